// Package fixture holds sample components used by the bridge tests and the
// CLI. NewTestComponent and NewScene seed them with known values.
package fixture
