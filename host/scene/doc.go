// Package scene is a small in-memory host: a tree of objects carrying
// components, plus a few identity-managed resources and value objects.
// It implements every interface of package host and is what the tests and
// the command line tool run the bridge against.
package scene
