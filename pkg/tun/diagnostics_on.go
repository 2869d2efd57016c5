//go:build tunopen_diag

package tun

const diagnostics = true
