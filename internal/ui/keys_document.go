package ui

// DocumentKeys defines key bindings acting on documents
type DocumentKeys struct {
	Close    KeyWithTip
	CloseAll KeyWithTip
	Next     KeyWithTip
	Open     KeyWithTip
	Previous KeyWithTip
	Reload   KeyWithTip
	View     KeyWithTip
}

func newDocumentKeys(b map[string]KeyWithTip) DocumentKeys {
	return DocumentKeys{
		Close:    b["close"],
		CloseAll: b["close_all"],
		Next:     b["next"],
		Open:     b["open"],
		Previous: b["previous"],
		Reload:   b["reload"],
		View:     b["view"],
	}
}

// GeometryKeys defines key bindings that move and resize the active document
type GeometryKeys struct {
	GrowHeight   KeyWithTip
	GrowWidth    KeyWithTip
	MoveDown     KeyWithTip
	MoveLeft     KeyWithTip
	MoveRight    KeyWithTip
	MoveUp       KeyWithTip
	ShrinkHeight KeyWithTip
	ShrinkWidth  KeyWithTip
}

func newGeometryKeys(b map[string]KeyWithTip) GeometryKeys {
	return GeometryKeys{
		GrowHeight:   b["grow_height"],
		GrowWidth:    b["grow_width"],
		MoveDown:     b["move_down"],
		MoveLeft:     b["move_left"],
		MoveRight:    b["move_right"],
		MoveUp:       b["move_up"],
		ShrinkHeight: b["shrink_height"],
		ShrinkWidth:  b["shrink_width"],
	}
}

// LayoutKeys defines key bindings for layout modes and arrangement
type LayoutKeys struct {
	Arrange  KeyWithTip
	Freeform KeyWithTip
	Grid     KeyWithTip
	Snap     KeyWithTip
	Stacked  KeyWithTip
	Suggest  KeyWithTip
}

func newLayoutKeys(b map[string]KeyWithTip) LayoutKeys {
	return LayoutKeys{
		Arrange:  b["arrange"],
		Freeform: b["freeform"],
		Grid:     b["grid"],
		Snap:     b["snap"],
		Stacked:  b["stacked"],
		Suggest:  b["suggest"],
	}
}
