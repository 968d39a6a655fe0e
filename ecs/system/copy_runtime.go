package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/climb/prefabs"
)

const copyScriptPath = "copy.tengo"

// CopyRuntime renders narrative lines through the copy script, which owns
// name substitution and the end-of-game summary wording.
type CopyRuntime struct {
	compiled *tengo.Compiled
	lines    map[string]string
	name     string
}

func NewCopyRuntime(lines map[string]string, name string) (*CopyRuntime, error) {
	src, err := prefabs.LoadScript(copyScriptPath)
	if err != nil {
		return nil, fmt.Errorf("copy: load script: %w", err)
	}
	return newCopyRuntime(src, lines, name)
}

func newCopyRuntime(src []byte, lines map[string]string, name string) (*CopyRuntime, error) {
	script := tengo.NewScript(src)
	_ = script.Add("__op", "")
	_ = script.Add("__tpl", "")
	_ = script.Add("__name", "")
	_ = script.Add("__fails", 0)
	_ = script.Add("__out", "")
	script.SetImports(stdlib.GetModuleMap("text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("copy: compile: %w", err)
	}
	return &CopyRuntime{compiled: compiled, lines: lines, name: name}, nil
}

// Reload recompiles the copy script, keeping the current lines and name.
func (c *CopyRuntime) Reload() error {
	fresh, err := NewCopyRuntime(c.lines, c.name)
	if err != nil {
		return err
	}
	c.compiled = fresh.compiled
	return nil
}

func (c *CopyRuntime) SetName(name string) {
	c.name = name
}

func (c *CopyRuntime) SetLines(lines map[string]string) {
	c.lines = lines
}

// Line renders the copy for key. Unknown keys render as the key itself.
func (c *CopyRuntime) Line(key string) string {
	tpl, ok := c.lines[key]
	if !ok {
		return key
	}
	out, err := c.run("line", tpl, 0)
	if err != nil {
		log.Printf("copy: line %s: %v", key, err)
		return tpl
	}
	return out
}

// Summary renders the end-of-game fail count.
func (c *CopyRuntime) Summary(fails int) string {
	out, err := c.run("summary", "", fails)
	if err != nil {
		log.Printf("copy: summary: %v", err)
		return fmt.Sprintf("%d", fails)
	}
	return out
}

func (c *CopyRuntime) run(op, tpl string, fails int) (string, error) {
	if err := c.compiled.Set("__op", op); err != nil {
		return "", err
	}
	if err := c.compiled.Set("__tpl", tpl); err != nil {
		return "", err
	}
	if err := c.compiled.Set("__name", c.name); err != nil {
		return "", err
	}
	if err := c.compiled.Set("__fails", fails); err != nil {
		return "", err
	}
	if err := c.compiled.Run(); err != nil {
		return "", err
	}
	return c.compiled.Get("__out").String(), nil
}
