// Package testsupport builds applications and fake collaborators for tests.
package testsupport
