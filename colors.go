// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// Styles used for console output.
type Styles struct {
	Title    lipgloss.Style
	Found    lipgloss.Style
	NotFound lipgloss.Style
	Muted    lipgloss.Style
}

var (
	currentStyles *Styles
	detectedMode  TerminalMode

	Green, Info, Warning, Error, Reset string
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createStyles(mode TerminalMode) *Styles {
	found, notFound, title, muted := "46", "196", "39", "245"
	if mode == TerminalModeLight {
		found, notFound, title, muted = "28", "124", "25", "240"
	}
	return &Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(title)).Bold(true),
		Found:    lipgloss.NewStyle().Foreground(lipgloss.Color(found)).Bold(true),
		NotFound: lipgloss.NewStyle().Foreground(lipgloss.Color(notFound)).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}

// InitializeColors detects terminal mode and sets up the styles and ANSI codes.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	currentStyles = createStyles(detectedMode)
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

func GetStyles() *Styles {
	if currentStyles == nil {
		InitializeColors()
	}
	return currentStyles
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// foundLabel renders the outcome of a search.
func foundLabel(found bool) string {
	styles := GetStyles()
	if found {
		return styles.Found.Render("Found")
	}
	return styles.NotFound.Render("Not Found")
}
