package hex

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("When a grid is generated for a radius", t, func() {
		Convey("Every radius yields 3n²+3n+1 distinct cells within distance n", func() {
			for n := 0; n <= 8; n++ {
				cells := Generate(n)
				So(len(cells), ShouldEqual, 3*n*n+3*n+1)
				seen := map[Axial]bool{}
				for _, a := range cells {
					So(a.Distance(), ShouldBeLessThanOrEqualTo, n)
					So(seen[a], ShouldBeFalse)
					seen[a] = true
				}
			}
		})

		Convey("Radius 1 yields the origin and its six neighbours", func() {
			cells := Generate(1)
			So(cells, ShouldHaveLength, 7)
			for _, want := range []Axial{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, -1}, {-1, 1}} {
				So(cells, ShouldContain, want)
			}
		})

		Convey("Cells come out in double-loop order", func() {
			So(Generate(1), ShouldResemble, []Axial{
				{-1, 0}, {-1, 1},
				{0, -1}, {0, 0}, {0, 1},
				{1, -1}, {1, 0},
			})
		})

		Convey("A negative radius yields nothing", func() {
			So(Generate(-1), ShouldBeEmpty)
		})
	})
}

func TestGridExpand(t *testing.T) {
	Convey("Given the radius 0 grid", t, func() {
		g := GenerateGrid(0)

		Convey("Expanding the origin adds its six neighbours", func() {
			ng := g.Expand(Axial{})
			So(ng.Len(), ShouldEqual, 7)
			So(g.Len(), ShouldEqual, 1)
			for _, n := range (Axial{}).Neighbors() {
				So(ng.Contains(n), ShouldBeTrue)
			}

			Convey("And expanding again is a no-op", func() {
				So(ng.Expand(Axial{}).Coords(), ShouldResemble, ng.Coords())
			})
		})

		Convey("Expanding an edge cell only adds the missing neighbours", func() {
			full := GenerateGrid(1)
			ng := full.Expand(Axial{Q: 1, R: 0})
			So(ng.Len(), ShouldEqual, 10)
			So(full.Len(), ShouldEqual, 7)
		})
	})
}
