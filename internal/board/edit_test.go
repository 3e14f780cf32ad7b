package board

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"hexagrid/internal/hex"
)

func newTestBoard(radius int) State {
	return New(hex.Layout{Size: 6, Spacing: 1}, radius).Resize(160, 96)
}

func TestSelectAndSave(t *testing.T) {
	Convey("Given an idle radius 1 board", t, func() {
		s := newTestBoard(1)
		So(s.Mode(), ShouldEqual, ModeIdle)

		Convey("Selecting a cell off the grid is refused", func() {
			ns, ok := s.Select(hex.Axial{Q: 5, R: 5})
			So(ok, ShouldBeFalse)
			So(ns.Mode(), ShouldEqual, ModeIdle)
		})

		Convey("Selecting a grid cell opens it for editing", func() {
			ns, ok := s.Select(hex.Axial{Q: 1, R: -1})
			So(ok, ShouldBeTrue)
			So(ns.Mode(), ShouldEqual, ModeEditing)
			sel, editing := ns.Selected()
			So(editing, ShouldBeTrue)
			So(sel, ShouldResemble, hex.Axial{Q: 1, R: -1})

			Convey("A second cell cannot be selected at the same time", func() {
				_, ok := ns.Select(hex.Axial{})
				So(ok, ShouldBeFalse)
			})

			Convey("Saving commits the draft and returns to idle", func() {
				saved := ns.SetDraft("hello").Save()
				So(saved.Mode(), ShouldEqual, ModeIdle)
				c, ok := saved.Cell(hex.Axial{Q: 1, R: -1})
				So(ok, ShouldBeTrue)
				So(c.Text, ShouldEqual, "hello")

				Convey("Re-selecting loads the stored text as the draft", func() {
					again, _ := saved.Select(hex.Axial{Q: 1, R: -1})
					So(again.Draft(), ShouldEqual, "hello")
				})
			})

			Convey("Dismissing drops the draft", func() {
				dismissed := ns.SetDraft("scratch").Dismiss()
				So(dismissed.Mode(), ShouldEqual, ModeIdle)
				_, ok := dismissed.Cell(hex.Axial{Q: 1, R: -1})
				So(ok, ShouldBeFalse)
			})

			Convey("The earlier state value is untouched", func() {
				ns.SetDraft("x").Save()
				_, ok := s.Cell(hex.Axial{Q: 1, R: -1})
				So(ok, ShouldBeFalse)
				So(s.Mode(), ShouldEqual, ModeIdle)
			})
		})

		Convey("With expansion on, selecting grows the grid around the cell", func() {
			s.ExpandOnSelect = true
			ns, ok := s.Select(hex.Axial{Q: 1, R: 0})
			So(ok, ShouldBeTrue)
			So(ns.Grid().Len(), ShouldEqual, 10)
			So(s.Grid().Len(), ShouldEqual, 7)
		})
	})
}

func TestImages(t *testing.T) {
	a := hex.Axial{Q: 0, R: 1}

	Convey("Given a cell being edited", t, func() {
		s, _ := newTestBoard(1).Select(a)

		Convey("Attaching stores the image without a save", func() {
			ns := s.AttachImage("file:///tmp/cat.png")
			c, ok := ns.Cell(a)
			So(ok, ShouldBeTrue)
			So(c.Image, ShouldEqual, "file:///tmp/cat.png")

			Convey("And dismissing keeps it", func() {
				c, _ := ns.Dismiss().Cell(a)
				So(c.Image, ShouldEqual, "file:///tmp/cat.png")
			})

			Convey("Detaching removes it and the empty cell", func() {
				_, ok := ns.DetachImage().Cell(a)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Detaching with no image stored is a no-op", func() {
			ns := s.DetachImage()
			_, ok := ns.Cell(a)
			So(ok, ShouldBeFalse)
			So(ns.Document().Images, ShouldBeEmpty)
			So(ns.Mode(), ShouldEqual, ModeEditing)
		})

		Convey("Detaching keeps the text", func() {
			ns := s.SetDraft("note").Save()
			ns, _ = ns.Select(a)
			ns = ns.AttachImage("img").DetachImage()
			c, ok := ns.Cell(a)
			So(ok, ShouldBeTrue)
			So(c, ShouldResemble, Cell{Text: "note"})
		})
	})

	Convey("Image operations outside editing do nothing", t, func() {
		s := newTestBoard(1).AttachImage("img")
		So(s.Cells(), ShouldBeEmpty)
	})
}
