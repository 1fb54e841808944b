// Package kernel holds the identity value shared by aggregates: UUID.
package kernel
