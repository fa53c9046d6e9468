// Package names loads the naming configuration that assigns human-readable
// names to globals, scripts, locals, room variables and enumerated constants.
//
// The grammar is line based. Everything after ';' is a comment and blank lines
// are ignored. Every other line is `key = value` with a dotted key:
//
//	enum.<Enum>.<value>          = ConstName
//	global.<n>                   = name           or  name:Enum
//	script.<n>                   = name           or  name(<params>)
//	script.<n>.local.<m>         = name
//	room.<r>.var.<n>             = name
//	room.<r>.script.<n>          = name           or  name(<params>)
//	room.<r>.script.<n>.local.<m> = name
//
// An enum must be defined before a global refers to it.
package names

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrBadConfig is wrapped by every parse failure.
var ErrBadConfig = errors.New("names: bad config")

// EnumID indexes Config.Enums.
type EnumID int

// Config is a parsed naming configuration.
type Config struct {
	GlobalNames map[int]string
	GlobalTypes map[int]EnumID
	Scripts     map[int]*Script
	Rooms       map[int]*Room
	Enums       []Enum
	EnumNames   map[string]EnumID
}

// Room holds names scoped to one room.
type Room struct {
	Vars    map[int]string
	Scripts map[int]*Script
}

// Script names a script, its parameter count and its locals.
type Script struct {
	Name      string
	Params    uint16
	HasParams bool
	Locals    map[int]string
}

// Enum is a named set of constants.
type Enum struct {
	Name   string
	Values map[int32]string
}

func newConfig() *Config {
	return &Config{
		GlobalNames: make(map[int]string),
		GlobalTypes: make(map[int]EnumID),
		Scripts:     make(map[int]*Script),
		Rooms:       make(map[int]*Room),
		EnumNames:   make(map[string]EnumID),
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse parses a configuration from text.
func Parse(text string) (*Config, error) {
	c := newConfig()
	for i, line := range strings.Split(text, "\n") {
		if semi := strings.IndexByte(line, ';'); semi >= 0 {
			line = line[:semi]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := c.parseLine(line); err != nil {
			return nil, fmt.Errorf("%w on line %d", ErrBadConfig, i+1)
		}
	}
	return c, nil
}

var errLine = errors.New("bad line")

func (c *Config) parseLine(line string) error {
	lhs, rhs, ok := strings.Cut(line, "=")
	if !ok {
		return errLine
	}
	key := &keyPath{parts: strings.Split(strings.TrimSpace(lhs), ".")}
	value := strings.TrimSpace(rhs)

	switch key.next() {
	case "enum":
		return c.parseEnum(key, value)
	case "global":
		return c.parseGlobal(key, value)
	case "script":
		return parseScript(key, value, c.Scripts)
	case "room":
		return c.parseRoom(key, value)
	default:
		return errLine
	}
}

func (c *Config) parseEnum(key *keyPath, value string) error {
	name, ok := key.nextOK()
	if !ok {
		return errLine
	}
	raw, ok := key.final()
	if !ok {
		return errLine
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return errLine
	}

	id, ok := c.EnumNames[name]
	if !ok {
		id = EnumID(len(c.Enums))
		c.Enums = append(c.Enums, Enum{Name: name, Values: make(map[int32]string)})
		c.EnumNames[name] = id
	}
	c.Enums[id].Values[int32(v)] = value
	return nil
}

func (c *Config) parseGlobal(key *keyPath, value string) error {
	n, ok := key.finalIndex()
	if !ok {
		return errLine
	}
	name, typ, typed := strings.Cut(value, ":")
	if typed {
		id, ok := c.EnumNames[strings.TrimSpace(typ)]
		if !ok {
			return errLine
		}
		c.GlobalTypes[n] = id
		name = strings.TrimSpace(name)
	} else {
		delete(c.GlobalTypes, n)
	}
	c.GlobalNames[n] = name
	return nil
}

func (c *Config) parseRoom(key *keyPath, value string) error {
	r, ok := key.nextIndex()
	if !ok {
		return errLine
	}
	room := c.Rooms[r]
	if room == nil {
		room = &Room{Vars: make(map[int]string), Scripts: make(map[int]*Script)}
		c.Rooms[r] = room
	}

	switch key.next() {
	case "var":
		n, ok := key.finalIndex()
		if !ok {
			return errLine
		}
		room.Vars[n] = value
		return nil
	case "script":
		return parseScript(key, value, room.Scripts)
	default:
		return errLine
	}
}

func parseScript(key *keyPath, value string, scripts map[int]*Script) error {
	n, ok := key.nextIndex()
	if !ok {
		return errLine
	}
	s := scripts[n]
	if s == nil {
		s = &Script{Locals: make(map[int]string)}
		scripts[n] = s
	}

	sub, more := key.nextOK()
	if !more {
		if paren := strings.IndexByte(value, '('); paren >= 0 {
			if !strings.HasSuffix(value, ")") {
				return errLine
			}
			p, err := strconv.ParseUint(value[paren+1:len(value)-1], 10, 16)
			if err != nil {
				return errLine
			}
			s.Params = uint16(p)
			s.HasParams = true
			value = value[:paren]
		}
		s.Name = value
		return nil
	}
	if sub != "local" {
		return errLine
	}
	local, ok := key.finalIndex()
	if !ok {
		return errLine
	}
	s.Locals[local] = value
	return nil
}

// keyPath walks the dot-separated segments of a key.
type keyPath struct {
	parts []string
}

func (k *keyPath) nextOK() (string, bool) {
	if len(k.parts) == 0 {
		return "", false
	}
	s := k.parts[0]
	k.parts = k.parts[1:]
	return s, true
}

func (k *keyPath) next() string {
	s, _ := k.nextOK()
	return s
}

// final returns the next segment and requires it to be the last.
func (k *keyPath) final() (string, bool) {
	s, ok := k.nextOK()
	return s, ok && len(k.parts) == 0
}

func (k *keyPath) nextIndex() (int, bool) {
	s, ok := k.nextOK()
	if !ok {
		return 0, false
	}
	return parseIndex(s)
}

func (k *keyPath) finalIndex() (int, bool) {
	s, ok := k.final()
	if !ok {
		return 0, false
	}
	return parseIndex(s)
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
