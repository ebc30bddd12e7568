package app

import (
	"github.com/dshills/yap/internal/document"
)

// Status bar hints.
const (
	hintNormal = "[yap] q to exit, hjkl to scroll/pan, ? for help"
	hintHelp   = "[yap help] q to close help"
)

var helpLines = []string{
	"yap - yet another pager",
	"",
	"  q, Q          quit (close this help)",
	"  h, Left       pan left",
	"  l, Right      pan right",
	"  j, Down       scroll down",
	"  k, Up         scroll up",
	"  space, PgDn   next half page",
	"  PgUp          previous half page",
	"  g, Home       go to the top",
	"  G, End        go to the bottom",
	"  ?             show this help",
	"  Ctrl-C        quit",
}

func helpDocument() document.Document {
	return document.NewStatic(helpLines...)
}
