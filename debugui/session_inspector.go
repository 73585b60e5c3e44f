package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// SessionInspector shows every field of the session snapshot and offers
// buttons that submit intents for the next tick.
type SessionInspector struct {
	showGrid bool
}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{}
}

func (si *SessionInspector) Render(g *tetris.Game, _ float64) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)

	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Player: %s", g.PlayerName()))
	imgui.Text(fmt.Sprintf("Pending: %s", g.Pending()))

	if imgui.Button("Pause") {
		g.Submit(tetris.IntentTogglePause)
	}
	imgui.SameLine()
	if imgui.Button("Hold") {
		g.Submit(tetris.IntentHold)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		g.Submit(tetris.IntentRestart)
	}
	imgui.Checkbox("Show grid field", &si.showGrid)
	imgui.Separator()

	snap := g.Snapshot()
	val := reflect.ValueOf(snap)
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		if field.Name == "Grid" && !si.showGrid {
			continue
		}
		si.renderField(field.Name, val.Field(field.Index), field)
	}

	imgui.End()
}

func (si *SessionInspector) renderField(name string, val reflect.Value, field FieldInfo) {
	if field.IsPointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		val = val.Elem()
	}

	switch {
	case field.IsStruct:
		if imgui.TreeNodeStr(name) {
			for _, nested := range globalReflectionCache.GetFields(val.Type()) {
				si.renderField(nested.Name, val.Field(nested.Index), nested)
			}
			imgui.TreePop()
		}

	case val.Kind() == reflect.Bool:
		v := val.Bool()
		imgui.Checkbox(name, &v)

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, FormatValue(val)))
	}
}
