package telemetry

// Predefined service configurations
var (
	// BookingServiceConfig is the telemetry configuration for the booking service
	BookingServiceConfig = Config{
		ServiceName:    "booking-service",
		ServiceVersion: "1.0.0",
	}

	// MarketplaceServiceConfig is the telemetry configuration for the marketplace API
	MarketplaceServiceConfig = Config{
		ServiceName:    "marketplace-service",
		ServiceVersion: "1.0.0",
	}
)

// WithOTLPEndpoint sets the OTLP endpoint for a config
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}
