package names

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
; shared constants
enum.Color.0 = black
enum.Color.1 = white   ; trailing comment
enum.Bool.0 = false

global.1 = ego
global.7 = bg_color : Color

script.10 = init(2)
script.10.local.0 = counter
script.11 = tick

room.4.var.3 = door_open
room.4.script.2050 = enter(1)
room.4.script.2050.local.1 = tmp
`

func TestParseSample(t *testing.T) {
	c, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, map[int]string{1: "ego", 7: "bg_color"}, c.GlobalNames)
	require.Contains(t, c.GlobalTypes, 7)
	assert.Equal(t, "Color", c.Enums[c.GlobalTypes[7]].Name)
	assert.NotContains(t, c.GlobalTypes, 1)

	require.Len(t, c.Enums, 2)
	assert.Equal(t, map[int32]string{0: "black", 1: "white"}, c.Enums[c.EnumNames["Color"]].Values)

	initScript := c.Scripts[10]
	require.NotNil(t, initScript)
	assert.Equal(t, "init", initScript.Name)
	assert.True(t, initScript.HasParams)
	assert.Equal(t, uint16(2), initScript.Params)
	assert.Equal(t, map[int]string{0: "counter"}, initScript.Locals)

	tick := c.Scripts[11]
	require.NotNil(t, tick)
	assert.Equal(t, "tick", tick.Name)
	assert.False(t, tick.HasParams)

	room := c.Rooms[4]
	require.NotNil(t, room)
	assert.Equal(t, map[int]string{3: "door_open"}, room.Vars)
	enter := room.Scripts[2050]
	require.NotNil(t, enter)
	assert.Equal(t, "enter", enter.Name)
	assert.Equal(t, uint16(1), enter.Params)
	assert.Equal(t, map[int]string{1: "tmp"}, enter.Locals)

	assert.Equal(t, Summary{
		Globals: 2, Scripts: 2, Locals: 2, Rooms: 1,
		RoomVars: 1, RoomScripts: 1, Enums: 2, Constants: 3,
	}, c.Summary())
}

func TestParseErrorsReportLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "missing equals", text: "global.1 ego", want: "names: bad config on line 1"},
		{name: "unknown section", text: "\nfoo.1 = x", want: "names: bad config on line 2"},
		{name: "non-numeric global", text: "global.x = y", want: "names: bad config on line 1"},
		{name: "extra key segment", text: "global.1.2 = y", want: "names: bad config on line 1"},
		{name: "unknown enum", text: "global.1 = y:Nope", want: "names: bad config on line 1"},
		{name: "unclosed params", text: "script.1 = f(2", want: "names: bad config on line 1"},
		{name: "bad params", text: "script.1 = f(x)", want: "names: bad config on line 1"},
		{name: "script subkey", text: "script.1.param.0 = x", want: "names: bad config on line 1"},
		{name: "room subkey", text: "room.1.obj.0 = x", want: "names: bad config on line 1"},
		{name: "room missing number", text: "room = x", want: "names: bad config on line 1"},
		{name: "enum value range", text: "enum.E.99999999999 = x", want: "names: bad config on line 1"},
		{name: "enum missing value", text: "enum.E = x", want: "names: bad config on line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.ErrorIs(t, err, ErrBadConfig)
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestParseLaterAssignmentWins(t *testing.T) {
	c, err := Parse("enum.E.0 = a\nglobal.1 = x:E\nglobal.1 = y\nscript.2 = f(1)\nscript.2 = g")
	require.NoError(t, err)
	assert.Equal(t, "y", c.GlobalNames[1])
	assert.NotContains(t, c.GlobalTypes, 1)
	assert.Equal(t, "g", c.Scripts[2].Name)
	assert.True(t, c.Scripts[2].HasParams, "parameter count survives a later rename")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.ini")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.GlobalNames, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}
