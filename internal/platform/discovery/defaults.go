// Package discovery centralizes internal service-discovery conventions.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceClick is the click-transaction gRPC service identity.
	ServiceClick = "click"
	// ServiceIntegration is the integration gRPC service identity.
	ServiceIntegration = "integration"
	// ServiceStatistic is the statistic gRPC service identity.
	ServiceStatistic = "statistic"
	// ServiceOffer is the offer gRPC service identity.
	ServiceOffer = "offer"
	// ServiceUser is the system-user gRPC service identity.
	ServiceUser = "user"
)

var grpcPorts = map[string]int{
	ServiceClick:       9091,
	ServiceIntegration: 9092,
	ServiceStatistic:   9093,
	ServiceOffer:       9094,
	ServiceUser:        9095,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a
// service, or "" for services without a gRPC port.
func DefaultGRPCAddr(service string) string {
	service = strings.TrimSpace(service)
	port, ok := grpcPorts[service]
	if !ok || port <= 0 {
		return ""
	}
	return service + ":" + strconv.Itoa(port)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

