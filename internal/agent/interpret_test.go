// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"testing"

	"github.com/pdiddy/search-agent/pkg/types"
)

func TestInterpretIntent(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  types.Intent
	}{
		{"exact research", "research", types.IntentResearch},
		{"uppercase", "RESEARCH", types.IntentResearch},
		{"embedded", "This needs research.", types.IntentResearch},
		{"exact simple", "simple", types.IntentSimple},
		{"empty", "", types.IntentSimple},
		{"malformed", "I cannot classify this", types.IntentSimple},
		{"whitespace", "  \n ", types.IntentSimple},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interpretIntent(tt.reply); got != tt.want {
				t.Errorf("interpretIntent(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}

func TestInterpretCompany(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		want   string
		wantOK bool
	}{
		{"company name", "Acme Corp", "Acme Corp", true},
		{"trimmed", "  Acme Corp \n", "Acme Corp", true},
		{"none sentinel", "None", "", false},
		{"lowercase none", "none", "", false},
		{"uppercase none", "NONE", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
		{"none as substring is a name", "Nonesuch Industries", "Nonesuch Industries", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := interpretCompany(tt.reply)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("interpretCompany(%q) = (%q, %v), want (%q, %v)", tt.reply, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInterpretWebsite(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"bare url", "https://acme.example.com", "https://acme.example.com"},
		{"url in prose", "The official website is https://www.acme.com/about today.", "https://www.acme.com/about"},
		{"first of several", "Try https://first.com or https://second.com", "https://first.com"},
		{"http scheme", "http://acme.io", "http://acme.io"},
		{"no url falls back to trimmed text", "  acme dot com, probably  ", "acme dot com, probably"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interpretWebsite(tt.reply); got != tt.want {
				t.Errorf("interpretWebsite(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}

func TestInterpretWebsiteNeverEmpty(t *testing.T) {
	replies := []string{"no URL here", "acme.com", "try the company homepage"}
	for _, reply := range replies {
		if got := interpretWebsite(reply); got == "" {
			t.Errorf("interpretWebsite(%q) = empty string", reply)
		}
	}
}

func TestSiteScope(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      string
	}{
		{"https with path", "https://www.acme.com/about", "site:www.acme.com"},
		{"bare host", "https://acme.example.com", "site:acme.example.com"},
		{"http", "http://acme.io/pricing?plan=pro", "site:acme.io"},
		{"free text reference", "acme dot com", ""},
		{"empty", "", ""},
		{"mentions http but no url", "an http thing without a link", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := siteScope(tt.reference); got != tt.want {
				t.Errorf("siteScope(%q) = %q, want %q", tt.reference, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pricing information", "Pricing Information"},
		{"customers and target audience", "Customers And Target Audience"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
