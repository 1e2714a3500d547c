package llm

import (
	"fmt"
	"strings"
)

// Device is the inference device requested from a backend.
type Device string

const (
	DeviceAuto Device = "auto"
	DeviceCPU  Device = "cpu"
	DeviceCUDA Device = "cuda"
)

// ParseDevice accepts cpu, cuda or auto (case-insensitive); empty means auto.
func ParseDevice(value string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(DeviceAuto):
		return DeviceAuto, nil
	case string(DeviceCPU):
		return DeviceCPU, nil
	case string(DeviceCUDA), "gpu":
		return DeviceCUDA, nil
	}
	return "", fmt.Errorf("unexpected device %s", value)
}
