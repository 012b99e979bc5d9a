// Package sysfs is a thin read-only client for the kernel's power-supply
// reporting tree. Every battery, mains adapter, UPS and similar device shows
// up as one directory under the tree root, with one short text file per
// attribute. Missing attributes are the norm, not an error: most drivers only
// expose a subset.
package sysfs

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultRoot is the standard location of the power-supply reporting tree.
const DefaultRoot = "/sys/class/power_supply"

// maxAttrLen bounds a single attribute read. Attribute values are short
// single lines; anything longer is truncated silently.
const maxAttrLen = 4096

// Tree is a client for one power-supply reporting tree.
type Tree struct {
	root string
}

// New returns a Tree over the standard power-supply path.
func New() *Tree {
	return NewWithRoot(DefaultRoot)
}

// NewWithRoot returns a Tree rooted at an arbitrary directory. Tests use this
// to point at a synthetic tree instead of the real one.
func NewWithRoot(root string) *Tree {
	return &Tree{root: root}
}

// Root returns the root path of the tree.
func (t *Tree) Root() string {
	return t.root
}

// Devices returns the names of all device nodes under the tree root. It fails
// only when the root itself cannot be enumerated, which is the one hard
// failure this package knows about.
func (t *Tree) Devices() ([]string, error) {
	entries, err := os.ReadDir(t.root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate power-supply tree")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	logrus.WithFields(logrus.Fields{
		"root":    t.root,
		"devices": names,
	}).Trace("Enumerated power-supply tree")

	return names, nil
}

// ReadAttribute reads a single attribute of a device node. The boolean is
// false when the attribute cannot be read; a device lacking an attribute is
// the expected case, so no error detail is kept. Trailing whitespace
// (attribute files end in a newline) is stripped.
func (t *Tree) ReadAttribute(device, attr string) (string, bool) {
	if device == "" || attr == "" {
		return "", false
	}

	f, err := os.Open(filepath.Join(t.root, device, attr))
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf := make([]byte, maxAttrLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", false
	}

	val := strings.TrimRight(string(buf[:n]), " \t\r\n")

	logrus.WithFields(logrus.Fields{
		"device": device,
		"attr":   attr,
		"val":    val,
	}).Trace("Read power-supply attribute")

	return val, true
}

// ReadInt reads an attribute and parses it as a decimal integer. A parse
// failure degrades to absent, indistinguishable from a missing attribute.
func (t *Tree) ReadInt(device, attr string) (int, bool) {
	s, ok := t.ReadAttribute(device, attr)
	if !ok {
		return 0, false
	}

	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}

	return v, true
}
