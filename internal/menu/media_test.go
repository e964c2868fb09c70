package menu

import "testing"

func TestMediaTypeKnownExtensions(t *testing.T) {
	cases := map[string]string{
		"menu.png":    "image/png",
		"menu.jpg":    "image/jpeg",
		"menu.jpeg":   "image/jpeg",
		"menu.gif":    "image/gif",
		"menu.webp":   "image/webp",
		"MENU.PNG":    "image/png",
		"lunch.JPEG":  "image/jpeg",
		"a/b/day.gif": "image/gif",
	}

	for filename, want := range cases {
		if got := MediaType(filename); got != want {
			t.Errorf("MediaType(%q) = %q, want %q", filename, got, want)
		}
	}
}

func TestMediaTypeFallsBackToJPEG(t *testing.T) {
	for _, filename := range []string{"menu.bmp", "menu.txt", "menu", ""} {
		if got := MediaType(filename); got != "image/jpeg" {
			t.Errorf("MediaType(%q) = %q, want image/jpeg", filename, got)
		}
	}
}

func TestIsImage(t *testing.T) {
	if !IsImage("menu.png") || !IsImage("menu.WEBP") {
		t.Fatal("expected supported extensions to be images")
	}
	if IsImage("menu.pdf") || IsImage("notes.txt") || IsImage("menu") {
		t.Fatal("expected unsupported extensions to be rejected")
	}
}
