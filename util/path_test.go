package util

import (
	"testing"
)

func TestPathHelpers(t *testing.T) {
	fs := newTestFS(t, map[string]interface{}{
		"/po/fr.po": "",
	})

	if !Exist(fs, "/po") || !Exist(fs, "/po/fr.po") {
		t.Error("Exist should find /po and /po/fr.po")
	}
	if Exist(fs, "/po/de.po") {
		t.Error("Exist should not find /po/de.po")
	}
	if !IsFile(fs, "/po/fr.po") || IsFile(fs, "/po") {
		t.Error("IsFile should only match /po/fr.po")
	}
	if !IsDir(fs, "/po") || IsDir(fs, "/po/fr.po") || IsDir(fs, "/missing") {
		t.Error("IsDir should only match /po")
	}
}
