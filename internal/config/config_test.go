package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.UI().Theme != "pygments" {
		t.Errorf("Theme = %q, want pygments", c.UI().Theme)
	}
	if c.Editor().LineNumbers {
		t.Error("line numbers should start hidden")
	}
	if c.Editor().GutterWidth != 5 || c.Editor().WheelLines != 3 || c.Editor().QuitEscapes != 3 {
		t.Errorf("Editor() = %+v", c.Editor())
	}
	if c.UI().StyleCapacity != 63 || c.UI().TickInterval != 10*time.Millisecond {
		t.Errorf("UI() = %+v", c.UI())
	}
	if c.Files().LegacyEncoding != "ISO-8859-1" {
		t.Errorf("LegacyEncoding = %q", c.Files().LegacyEncoding)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	c := New(
		WithTheme("monokai"),
		WithLineNumbers(true),
		WithGutterWidth(7),
		WithWheelLines(5),
		WithQuitEscapes(2),
		WithStyleCapacity(8),
		WithTickInterval(time.Millisecond),
		WithWorkDir("/tmp"),
	)
	if c.UI().Theme != "monokai" || !c.Editor().LineNumbers {
		t.Errorf("options not applied: %+v %+v", c.UI(), c.Editor())
	}
	if c.Editor().GutterWidth != 7 || c.Editor().WheelLines != 5 || c.Editor().QuitEscapes != 2 {
		t.Errorf("Editor() = %+v", c.Editor())
	}
	if c.UI().StyleCapacity != 8 || c.UI().TickInterval != time.Millisecond {
		t.Errorf("UI() = %+v", c.UI())
	}
	if c.Files().WorkDir != "/tmp" {
		t.Errorf("WorkDir = %q", c.Files().WorkDir)
	}
}

func TestValidateCorrects(t *testing.T) {
	c := New(
		WithTheme(""),
		WithGutterWidth(0),
		WithWheelLines(-1),
		WithQuitEscapes(0),
		WithStyleCapacity(0),
		WithTickInterval(time.Hour),
	)
	err := c.Validate()
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Validate() = %v, want ErrInvalidValue", err)
	}
	if c.UI().Theme != DefaultTheme || c.Editor().GutterWidth != DefaultGutterWidth {
		t.Errorf("values not reset: %+v %+v", c.UI(), c.Editor())
	}
	if c.Editor().WheelLines != DefaultWheelLines || c.Editor().QuitEscapes != DefaultQuitEscapes {
		t.Errorf("Editor() = %+v", c.Editor())
	}
	if c.UI().StyleCapacity != DefaultStyleCapacity || c.UI().TickInterval != DefaultTickInterval {
		t.Errorf("UI() = %+v", c.UI())
	}
}

func TestSectionsAreSnapshots(t *testing.T) {
	c := Default()
	ed := c.Editor()
	ed.GutterWidth = 99
	if c.Editor().GutterWidth == 99 {
		t.Error("mutating a section snapshot changed the config")
	}
}
