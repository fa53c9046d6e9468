package names

// Summary counts the names a configuration defines.
type Summary struct {
	Globals     int `json:"globals"`
	Scripts     int `json:"scripts"`
	Locals      int `json:"locals"`
	Rooms       int `json:"rooms"`
	RoomVars    int `json:"room_vars"`
	RoomScripts int `json:"room_scripts"`
	Enums       int `json:"enums"`
	Constants   int `json:"constants"`
}

// Summary returns name counts for c.
func (c *Config) Summary() Summary {
	s := Summary{
		Globals: len(c.GlobalNames),
		Scripts: len(c.Scripts),
		Rooms:   len(c.Rooms),
		Enums:   len(c.Enums),
	}
	for _, sc := range c.Scripts {
		s.Locals += len(sc.Locals)
	}
	for _, r := range c.Rooms {
		s.RoomVars += len(r.Vars)
		s.RoomScripts += len(r.Scripts)
		for _, sc := range r.Scripts {
			s.Locals += len(sc.Locals)
		}
	}
	for _, e := range c.Enums {
		s.Constants += len(e.Values)
	}
	return s
}
