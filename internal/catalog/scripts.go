package catalog

// Shell command text for every catalog entry. Each function returns the raw
// script body for one menu item; multi-line commands embed newlines.

// Virtualization: KVM and XEN.

func kvmBase() string {
	return "sudo dnf install -y qemu-kvm libvirt-daemon-config-network libvirt-daemon-kvm"
}

func kvmFull() string {
	return "sudo dnf install -y @virtualization virt-top libguestfs-tools"
}

func kvmVirtManager() string { return "sudo dnf install -y virt-manager" }

func kvmTigerVNC() string { return "sudo dnf install -y tigervnc-server" }

func kvmRemmina() string { return "sudo dnf install -y remmina" }

func kvmLibvirtNetCreate() string {
	return "echo 'Placeholder for libvirt network creation script'"
}

func xenBase() string {
	return "sudo dnf install -y xen\nsudo systemctl enable xen-qemu-dom0-disk-backend.service"
}

// Cockpit management console.

func cockpitBase() string {
	return "sudo dnf install -y cockpit\nsudo systemctl enable --now cockpit.socket"
}

func cockpitFull() string {
	return "sudo dnf install -y cockpit cockpit-machines cockpit-podman cockpit-storaged\nsudo systemctl enable --now cockpit.socket"
}

func cockpitStorage() string { return "sudo dnf install -y cockpit-storaged" }

func cockpitPodman() string { return "sudo dnf install -y cockpit-podman" }

func cockpitFiles() string {
	return "echo 'cockpit-files is part of the core cockpit package'"
}

func cockpitImageBuilder() string { return "sudo dnf install -y cockpit-composer" }

func cockpitMachines() string { return "sudo dnf install -y cockpit-machines" }

// Gnome desktop environment.

func gnomeBase() string { return "sudo dnf install -y gdm gnome-shell gnome-terminal" }

func gnomeFull() string { return "sudo dnf groupinstall -y 'Workstation'" }

func gnomeExtPlaceholder() string {
	return "echo 'GNOME Shell extension installation must be done manually or via a dedicated script.'"
}

// Desktop applications.

func appKonsole() string { return "sudo dnf install -y konsole" }

func appFilezilla() string { return "sudo dnf install -y filezilla" }

func appRemmina() string { return "sudo dnf install -y remmina" }

func appFirefox() string { return "sudo dnf install -y firefox" }

func appChromium() string { return "sudo dnf install -y chromium" }

func appPlaceholder() string {
	return "echo 'This app is not in the default repos or requires special installation.'"
}

// Sway window manager.

func swayCompile() string {
	return "echo 'Placeholder for Sway v1.10 compilation script'"
}

func swayWofi() string { return "sudo dnf install -y wofi" }

func swaySwaybg() string { return "sudo dnf install -y swaybg" }

func swayWaybar() string { return "sudo dnf install -y waybar" }

// NetworkManager VPN plugins.

func netVPNOpenVPN() string { return "sudo dnf install -y NetworkManager-openvpn-gnome" }

func netVPNL2TP() string { return "sudo dnf install -y NetworkManager-l2tp-gnome" }

func netVPNStrongSwan() string { return "sudo dnf install -y NetworkManager-strongswan-gnome" }

func netVPNLibreSwan() string { return "sudo dnf install -y NetworkManager-libreswan-gnome" }

func netVPNPPTP() string { return "sudo dnf install -y NetworkManager-pptp-gnome" }

func netVPNOpenConnect() string { return "sudo dnf install -y NetworkManager-openconnect-gnome" }

// Repository enablement (Rocky naming; the channel IDs match the other EL
// rebuilds closely enough that the commands are shared).

func repoRT() string { return "sudo dnf config-manager --set-enabled rt" }

func repoPlus() string { return "sudo dnf config-manager --set-enabled plus" }

func repoNFV() string { return "sudo dnf config-manager --set-enabled nfv" }

func repoHA() string { return "sudo dnf config-manager --set-enabled ha" }

func repoExtras() string { return "sudo dnf config-manager --set-enabled extras" }

func repoDevel() string { return "sudo dnf config-manager --set-enabled devel" }

func repoCRB() string { return "sudo dnf config-manager --set-enabled crb" }

func repoBaseOS() string { return "sudo dnf config-manager --set-enabled baseos" }

func repoAppStream() string { return "sudo dnf config-manager --set-enabled appstream" }

func repoEPEL() string {
	return "sudo dnf config-manager --set-enabled crb\nsudo dnf install -y 'https://dl.fedoraproject.org/pub/epel/epel-release-latest-9.noarch.rpm'"
}

func repoFlathub() string {
	return "sudo dnf install -y flatpak\nsudo flatpak remote-add --if-not-exists flathub https://dl.flathub.org/repo/flathub.flatpakrepo"
}
