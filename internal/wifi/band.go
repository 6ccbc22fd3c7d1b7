package wifi

import "wifiwatch/internal/models"

// BandForFrequency classifies a frequency in MHz into a WiFi band.
// Frequencies outside the known ranges classify as BandUnknown.
func BandForFrequency(mhz int) models.Band {
	switch {
	case mhz >= 2401 && mhz <= 2495:
		return models.Band24
	case mhz >= 5150 && mhz <= 5895:
		return models.Band5
	default:
		return models.BandUnknown
	}
}

// ChannelForFrequency derives the channel number from a frequency in MHz.
// Returns 0 for frequencies outside the standard channel tables.
func ChannelForFrequency(mhz int) int {
	switch {
	case mhz == 2484:
		// Channel 14 sits 12 MHz above channel 13.
		return 14
	case mhz >= 2412 && mhz <= 2472:
		return (mhz - 2407) / 5
	case mhz >= 5150 && mhz <= 5895:
		return (mhz - 5000) / 5
	default:
		return 0
	}
}

// FrequencyForChannel derives the center frequency in MHz from a channel
// number. Returns 0 for channels outside the standard tables.
func FrequencyForChannel(ch int) int {
	switch {
	case ch == 14:
		return 2484
	case ch >= 1 && ch <= 13:
		return 2407 + ch*5
	case ch >= 36 && ch <= 177:
		return 5000 + ch*5
	default:
		return 0
	}
}
