// Package kernel contains shared value objects used across the freight
// domain model. These are the building blocks that aggregates in other
// domain packages are composed of.
//
// The package includes:
//   - UUID: validated unique identifier wrapping github.com/google/uuid
//   - GeoPoint: latitude/longitude pair with Haversine distance
//   - Role: closed enumeration of acting parties (Business, Trucker)
//
// All value objects are immutable and must be created through their
// constructor functions; zero values fail validation.
package kernel
