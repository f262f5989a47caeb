// Package system holds the named device states a host reports: battery
// power, network reachability and the storage medium the game runs from.
package system

import "github.com/lovepotion/love/bimap"

// PowerState is the battery state.
type PowerState uint8

const (
	PowerUnknown PowerState = iota
	PowerBattery
	PowerCharged
	PowerCharging
)

// NetworkState is the network reachability.
type NetworkState uint8

const (
	NetworkUnknown NetworkState = iota
	NetworkConnected
	NetworkDisconnected
)

// MediaType is the storage medium the title was launched from.
type MediaType uint8

const (
	MediaNAND MediaType = iota
	MediaSD
	MediaGameCard
)

var powerStates = bimap.New(
	bimap.E("unknown", PowerUnknown),
	bimap.E("battery", PowerBattery),
	bimap.E("charged", PowerCharged),
	bimap.E("charging", PowerCharging),
)

var networkStates = bimap.New(
	bimap.E("unknown", NetworkUnknown),
	bimap.E("connected", NetworkConnected),
	bimap.E("disconnected", NetworkDisconnected),
)

var mediaTypes = bimap.New(
	bimap.E("nand", MediaNAND),
	bimap.E("sdmc", MediaSD),
	bimap.E("gamecard", MediaGameCard),
)

func (s PowerState) String() string {
	if name, ok := powerStates.ReverseFind(s); ok {
		return name
	}
	return "unknown"
}

func (s NetworkState) String() string {
	if name, ok := networkStates.ReverseFind(s); ok {
		return name
	}
	return "unknown"
}

func (m MediaType) String() string {
	if name, ok := mediaTypes.ReverseFind(m); ok {
		return name
	}
	return "unknown"
}

// Name lookups. Unknown names and values report false.
func PowerStateByName(name string) (PowerState, bool)     { return powerStates.Find(name) }
func NetworkStateByName(name string) (NetworkState, bool) { return networkStates.Find(name) }
func MediaTypeByName(name string) (MediaType, bool)       { return mediaTypes.Find(name) }

func PowerStateName(s PowerState) (string, bool)     { return powerStates.ReverseFind(s) }
func NetworkStateName(s NetworkState) (string, bool) { return networkStates.ReverseFind(s) }
func MediaTypeName(m MediaType) (string, bool)       { return mediaTypes.ReverseFind(m) }

func PowerStateNames() []string   { return powerStates.Names() }
func NetworkStateNames() []string { return networkStates.Names() }
func MediaTypeNames() []string    { return mediaTypes.Names() }

// Info is a snapshot of the host state.
type Info struct {
	Power   PowerState
	Percent int // battery charge, -1 when unknown
	Network NetworkState
	Media   MediaType
}

// Reporter queries the host.
type Reporter interface {
	Info() Info
}

// Unknown reports nothing is known about the host.
type Unknown struct{}

func (Unknown) Info() Info {
	return Info{Power: PowerUnknown, Percent: -1, Network: NetworkUnknown, Media: MediaNAND}
}
