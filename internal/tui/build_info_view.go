// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-user-auth/models"
)

func renderBuildInfoWindow(client models.AppBuildInfo, server *models.AppBuildInfo, serverErr string) string {
	var b strings.Builder

	b.WriteString("Application: go-user-auth\n\n")
	b.WriteString("Client\n")
	writeBuildInfo(&b, client)

	b.WriteString("\nServer\n")
	switch {
	case serverErr != "":
		b.WriteString("  unavailable: ")
		b.WriteString(serverErr)
		b.WriteString("\n")
	case server == nil:
		b.WriteString("  loading...\n")
	default:
		writeBuildInfo(&b, *server)
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func writeBuildInfo(b *strings.Builder, info models.AppBuildInfo) {
	b.WriteString("  Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n  Date:    ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n  Commit:  ")
	b.WriteString(valueOrNA(info.Commit))
	b.WriteString("\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
