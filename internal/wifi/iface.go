package wifi

import wireless "github.com/taigrr/go-wireless"

// WirelessInterfaces lists the host's wireless interface names as reported by
// wpa_supplicant. The list is informational: scanning itself goes through the
// platform command, which picks its own interface, and an empty result here
// only means wpa_supplicant exposes nothing (common on macOS and on systems
// managed solely by NetworkManager).
func WirelessInterfaces() []string {
	return wireless.Interfaces()
}
