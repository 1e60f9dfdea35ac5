package tfmerge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZigzag(t *testing.T) {
	t.Run("0..15", func(tt *testing.T) {
		block := WrapView([]int16{
			0, 1, 5, 6,
			2, 4, 7, 12,
			3, 8, 11, 13,
			9, 10, 14, 15,
		}, 4, 4, 4)

		sorted := Zigzag(block)
		expect := []int16{
			0, 1, 2, 3,
			4, 5, 6, 7,
			8, 9, 10, 11,
			12, 13, 14, 15,
		}
		if cmp.Equal(sorted, expect) != true {
			tt.Errorf("%v != %v", sorted, expect)
		}

		restored := NewView[int16](4, 4)
		Unzigzag(sorted, restored)
		if cmp.Equal(restored.Values(), block.Values()) != true {
			tt.Errorf("%v != %v", restored.Values(), block.Values())
		}
	})
	t.Run("round trip", func(tt *testing.T) {
		for _, size := range BlockSizes() {
			n := size.Int()
			block := NewView[int32](n, n)
			for i := 0; i < n*n; i += 1 {
				block.Set(i%n, i/n, int32(i))
			}
			scan := Zigzag(block)
			if len(scan) != n*n {
				tt.Fatalf("size=%d len=%d", n, len(scan))
			}
			if scan[0] != 0 || scan[len(scan)-1] != int32(n*n-1) {
				tt.Errorf("size=%d first=%d last=%d", n, scan[0], scan[len(scan)-1])
			}
			restored := NewView[int32](n, n)
			Unzigzag(scan, restored)
			if cmp.Equal(restored.Values(), block.Values()) != true {
				tt.Errorf("size=%d: %v != %v", n, restored.Values(), block.Values())
			}
		}
	})
	t.Run("short scan", func(tt *testing.T) {
		dst := NewView[int32](2, 2)
		dst.Fill(-1)
		Unzigzag([]int32{7, 8}, dst)
		expect := []int32{7, 8, -1, -1}
		if cmp.Equal(dst.Values(), expect) != true {
			tt.Errorf("%v != %v", dst.Values(), expect)
		}
	})
}
