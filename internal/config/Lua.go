package config

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// A settings script is plain Lua that assigns globals:
//
//	player_name = "ada"
//	log_level   = "debug"
//	theme = { player_head = "#00FF00", food = "#FF0000" }
//	keys  = { pause = "p", up = { "up", "w" } }
//
// Globals the script leaves unset keep their defaults.

func loadLuaFile(path string, s *Settings) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("could not run settings script: %w", err)
	}
	return readGlobals(L, s)
}

func loadLuaString(src string, s *Settings) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return fmt.Errorf("could not run settings script: %w", err)
	}
	return readGlobals(L, s)
}

func readGlobals(L *lua.LState, s *Settings) error {
	fields := []struct {
		name   string
		target *string
	}{
		{"player_name", &s.PlayerName},
		{"log_level", &s.LogLevel},
		{"log_file", &s.LogFile},
	}
	for _, g := range fields {
		if err := readString(L.GetGlobal(g.name), g.name, g.target); err != nil {
			return err
		}
	}

	if err := readTable(L.GetGlobal("theme"), "theme", func(key string, value lua.LValue) error {
		target := themeField(&s.Theme, key)
		if target == nil {
			return fmt.Errorf("theme: unknown color %q", key)
		}
		return readString(value, "theme."+key, target)
	}); err != nil {
		return err
	}

	return readTable(L.GetGlobal("keys"), "keys", func(key string, value lua.LValue) error {
		target := keysField(&s.Keys, key)
		if target == nil {
			return fmt.Errorf("keys: unknown action %q", key)
		}
		return readKeyList(value, "keys."+key, target)
	})
}

func readString(value lua.LValue, name string, target *string) error {
	switch v := value.(type) {
	case *lua.LNilType:
		return nil
	case lua.LString:
		*target = string(v)
		return nil
	default:
		return fmt.Errorf("%s: expected string, got %s", name, value.Type())
	}
}

func readTable(value lua.LValue, name string, fn func(key string, value lua.LValue) error) error {
	if value == lua.LNil {
		return nil
	}
	tbl, ok := value.(*lua.LTable)
	if !ok {
		return fmt.Errorf("%s: expected table, got %s", name, value.Type())
	}

	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("%s: expected string keys, got %s", name, k.Type())
			return
		}
		err = fn(string(key), v)
	})
	return err
}

// readKeyList accepts a single key name or a list of them.
func readKeyList(value lua.LValue, name string, target *[]string) error {
	switch v := value.(type) {
	case lua.LString:
		*target = []string{string(v)}
		return nil
	case *lua.LTable:
		keys := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			item, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				return fmt.Errorf("%s[%d]: expected string, got %s", name, i, v.RawGetInt(i).Type())
			}
			keys = append(keys, string(item))
		}
		*target = keys
		return nil
	default:
		return fmt.Errorf("%s: expected string or list, got %s", name, value.Type())
	}
}

func themeField(t *Theme, key string) *string {
	switch key {
	case "player_head":
		return &t.PlayerHead
	case "player_body":
		return &t.PlayerBody
	case "blue":
		return &t.Blue
	case "yellow":
		return &t.Yellow
	case "food":
		return &t.Food
	case "border":
		return &t.Border
	case "accent":
		return &t.Accent
	}
	return nil
}

func keysField(k *Keys, key string) *[]string {
	switch key {
	case "up":
		return &k.Up
	case "down":
		return &k.Down
	case "left":
		return &k.Left
	case "right":
		return &k.Right
	case "start":
		return &k.Start
	case "pause":
		return &k.Pause
	case "restart":
		return &k.Restart
	case "quit":
		return &k.Quit
	}
	return nil
}
