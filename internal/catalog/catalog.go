// Package catalog supplies the per-distribution mapping from menu entries to
// shell-command-producing functions. It is pure data: entries are compiled in
// and the same call always yields the same catalog.
package catalog

import (
	"fmt"
	"strings"

	"elsetup/internal/distro"
)

// Category controls execution order in generated scripts. Repository entries
// always run before General ones because repo enablement is a prerequisite
// for the package installs that follow.
type Category int

const (
	General Category = iota
	Repository
)

// String returns the canonical category name.
func (c Category) String() string {
	if c == Repository {
		return "repository"
	}
	return "general"
}

// ParseCategory resolves a category name from overlay files.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "repository", "repo":
		return Repository, nil
	case "general", "":
		return General, nil
	default:
		return General, fmt.Errorf("unknown category %q", name)
	}
}

// Entry declares one node of the menu tree. A nil Script marks a container
// declaration (possibly empty); otherwise the entry is a toggleable item
// whose Script returns the shell command text, newlines included.
type Entry struct {
	Path     []string
	Name     string
	Category Category
	Script   func() string
}

func item(path []string, name string, cat Category, script func() string) Entry {
	return Entry{Path: path, Name: name, Category: cat, Script: script}
}

func container(path []string, name string) Entry {
	return Entry{Path: path, Name: name}
}

// Entries returns the full compiled-in catalog for the given distribution.
// The result is deterministic and never empty.
func Entries(d distro.Distro) []Entry {
	_ = d // command text is shared across the supported EL variants for now

	kvm := []string{"Virtualization", "Virtualization Engines", "KVM Core & Tools"}
	kvmModules := append(append([]string(nil), kvm...), "Modules")
	kvmSetup := append(append([]string(nil), kvm...), "Setup Scripts")
	xen := []string{"Virtualization", "Virtualization Engines", "XEN Core & Tools"}
	cockpit := []string{"Virtualization", "KVM Management", "Cockpit"}
	cockpitModules := append(append([]string(nil), cockpit...), "Modules")

	gnome := []string{"Graphical Environments", "Gnome DE - STABLE"}
	gnomeInstall := append(append([]string(nil), gnome...), "Environment Installation")
	gnomeExt := append(append([]string(nil), gnome...), "Customization / Extensions")
	gnomeTiling := append(append([]string(nil), gnomeExt...), "Tiling WM")
	gnomeTopBar := append(append([]string(nil), gnomeExt...), "Top Bar")
	gnomeTweaks := append(append([]string(nil), gnomeExt...), "Tweaks")
	gnomeSearch := append(append([]string(nil), gnomeExt...), "Search / Launchers")
	gnomeApps := append(append([]string(nil), gnome...), "Applications / Packages")
	terminals := append(append([]string(nil), gnomeApps...), "Terminals")
	remote := append(append([]string(nil), gnomeApps...), "Remote Connection")
	browsers := append(append([]string(nil), gnomeApps...), "Browsers")

	sway := []string{"Graphical Environments", "Sway WM"}
	swayInstall := append(append([]string(nil), sway...), "Environment Installation", "Compile from Source")
	swayExt := append(append([]string(nil), sway...), "Customization / Extentsions")

	network := []string{"Networking", "NetworkManager"}
	repos := []string{"Repositories", "Add Repositories (ROCKY LINUX SPECIFIC)"}

	return []Entry{
		// KVM
		item(kvm, "Base Installation", General, kvmBase),
		item(kvm, "Full Installation", General, kvmFull),
		item(kvmModules, "virt-manager", General, kvmVirtManager),
		item(kvmModules, "tigervnc", General, kvmTigerVNC),
		item(kvmModules, "remmina", General, kvmRemmina),
		item(kvmSetup, "libvirt network create", General, kvmLibvirtNetCreate),
		// XEN
		item(xen, "Base Installation", General, xenBase),
		container([]string{"Virtualization", "Virtualization Engines"}, "XEN Management"),
		// Cockpit
		item(cockpit, "Base Installation", General, cockpitBase),
		item(cockpit, "Full Installation", General, cockpitFull),
		item(cockpitModules, "storage", General, cockpitStorage),
		item(cockpitModules, "podman", General, cockpitPodman),
		item(cockpitModules, "files", General, cockpitFiles),
		item(cockpitModules, "image builder", General, cockpitImageBuilder),
		item(cockpitModules, "machines", General, cockpitMachines),
		// Gnome
		item(gnomeInstall, "Base Installation", General, gnomeBase),
		item(gnomeInstall, "Full Installation", General, gnomeFull),
		item(gnomeTiling, "Forge", General, gnomeExtPlaceholder),
		item(gnomeTiling, "Tile", General, gnomeExtPlaceholder),
		item(gnomeTiling, "PaperWM", General, gnomeExtPlaceholder),
		item(gnomeTopBar, "status area horizontal spacing", General, gnomeExtPlaceholder),
		item(gnomeTopBar, "vitals", General, gnomeExtPlaceholder),
		item(gnomeTweaks, "Just Perfection", General, gnomeExtPlaceholder),
		item(gnomeSearch, "Search Light", General, gnomeExtPlaceholder),
		// Gnome apps
		item(terminals, "Ptyxis", General, appPlaceholder),
		item(terminals, "Konsole", General, appKonsole),
		item(terminals, "Allacritty", General, appPlaceholder),
		item(terminals, "Ghostty", General, appPlaceholder),
		item(remote, "Filezilla", General, appFilezilla),
		item(remote, "Remmina", General, appRemmina),
		item(browsers, "Firefox", General, appFirefox),
		item(browsers, "Chromium", General, appChromium),
		// Sway
		item(swayInstall, "v1.10", General, swayCompile),
		item(swayExt, "Wofi", General, swayWofi),
		item(swayExt, "Swaybg", General, swaySwaybg),
		item(swayExt, "Waybar", General, swayWaybar),
		// Networking
		item(network, "OpenVPN", General, netVPNOpenVPN),
		item(network, "OpenConnect", General, netVPNOpenConnect),
		item(network, "L2TP", General, netVPNL2TP),
		item(network, "LibreSwan", General, netVPNLibreSwan),
		item(network, "StrongSwan", General, netVPNStrongSwan),
		item(network, "PPTP", General, netVPNPPTP),
		// Repositories
		item(repos, "realtime", Repository, repoRT),
		item(repos, "plus", Repository, repoPlus),
		item(repos, "nfv", Repository, repoNFV),
		item(repos, "High availibility", Repository, repoHA),
		item(repos, "extras", Repository, repoExtras),
		item(repos, "devel (WARNING)", Repository, repoDevel),
		item(repos, "CRB (code ready builder)", Repository, repoCRB),
		item(repos, "base OS", Repository, repoBaseOS),
		item(repos, "appstream", Repository, repoAppStream),
		item(repos, "epel", Repository, repoEPEL),
		item(repos, "flathub", Repository, repoFlathub),
	}
}
