// Package services contains domain services that coordinate behavior across
// multiple aggregates. Domain services hold business logic that does not
// naturally belong to a single entity, such as ranking candidate drivers for
// an assignment.
package services
