// Package distro identifies which Enterprise Linux variant the host runs.
package distro

import (
	"os"
	"strings"
)

// Distro enumerates the supported Enterprise Linux variants.
type Distro int

const (
	Unknown Distro = iota
	RHEL
	CentOS
	Rocky
	AlmaLinux
)

const defaultOSReleasePath = "/etc/os-release"

var ids = map[string]Distro{
	"rhel":      RHEL,
	"centos":    CentOS,
	"rocky":     Rocky,
	"almalinux": AlmaLinux,
}

// String returns the display name used in generated script headers.
func (d Distro) String() string {
	switch d {
	case RHEL:
		return "RHEL"
	case CentOS:
		return "CentOS"
	case Rocky:
		return "Rocky"
	case AlmaLinux:
		return "AlmaLinux"
	default:
		return "Unknown"
	}
}

// FromID maps an os-release ID value to a Distro.
func FromID(id string) Distro {
	if d, ok := ids[strings.ToLower(strings.TrimSpace(id))]; ok {
		return d
	}
	return Unknown
}

// Detect reads the os-release file at path and resolves the distribution.
// An empty path falls back to /etc/os-release. Detection never fails:
// unreadable files and unrecognised IDs both yield Unknown.
func Detect(path string) Distro {
	if strings.TrimSpace(path) == "" {
		path = defaultOSReleasePath
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Unknown
	}
	return Parse(string(content))
}

// Parse scans os-release content for the ID= field.
func Parse(content string) Distro {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		id := strings.TrimPrefix(line, "ID=")
		id = strings.Trim(id, `"'`)
		return FromID(id)
	}
	return Unknown
}
