package riffscan

import (
	"bytes"
	"testing"
)

func TestParseListInfoEntries(t *testing.T) {
	data := containerBytes(
		testChunk{id: "fmt ", body: fmtBody(1, 1, 44100, 16, nil)},
		testChunk{id: "LIST", body: listInfoBody(
			testListEntry{id: "IART", text: "artist\x00"},
			testListEntry{id: "INAM", text: "track title\x00"},
			testListEntry{id: "ISFT", text: "riffscan\x00"},
		)},
		testChunk{id: "data", body: pcmBody(0, 0)},
	)

	store := parseBytes(t, data)

	if listType, _ := store.FourCC("list.list_type"); listType != CIDInfo {
		t.Fatalf("unexpected list type %q", listType[:])
	}

	if id, _ := store.FourCC("list.entry0.tag_id"); id != markerIART {
		t.Fatalf("unexpected first entry tag %q", id[:])
	}

	if size, _ := store.U32("list.entry0.text_size"); size != 7 {
		t.Fatalf("unexpected first entry size %d", size)
	}

	if text, _ := store.Text("list.entry1.text"); text != "track title\x00" {
		t.Fatalf("unexpected raw entry text %q", text)
	}

	entries := store.ListEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// The typed view trims NUL terminators, the raw store does not.
	if entries[0].Text != "artist" || entries[2].Text != "riffscan" {
		t.Fatalf("unexpected entry texts %+v", entries)
	}
}

func TestMetadataFromListEntries(t *testing.T) {
	data := containerBytes(
		testChunk{id: "LIST", body: listInfoBody(
			testListEntry{id: "IART", text: "artist\x00"},
			testListEntry{id: "ICMT", text: "my comment\x00"},
			testListEntry{id: "ITRK", text: "42\x00"},
		)},
		testChunk{id: "data"},
	)

	store := parseBytes(t, data)

	meta := store.Metadata()
	if meta == nil {
		t.Fatal("expected metadata from LIST/INFO chunk")
	}

	if meta.Artist != "artist" || meta.Comments != "my comment" || meta.TrackNbr != "42" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}

func TestMetadataAbsentWithoutList(t *testing.T) {
	store := parseBytes(t, minimalWavBytes())

	if meta := store.Metadata(); meta != nil {
		t.Fatalf("expected nil metadata, got %+v", meta)
	}
}

func TestMetadataIgnoresNonInfoList(t *testing.T) {
	body := append([]byte("adtl"), []byte("labl")...)
	body = appendUint32LE(body, 4)
	body = append(body, 0x01, 0x00, 0x00, 0x00)

	data := containerBytes(
		testChunk{id: "LIST", body: body},
		testChunk{id: "data"},
	)

	store := parseBytes(t, data)

	if meta := store.Metadata(); meta != nil {
		t.Fatalf("expected nil metadata for adtl list, got %+v", meta)
	}

	// The records themselves still decode through the generic entry walk.
	if text, ok := store.Text("list.entry0.text"); !ok || len(text) != 4 {
		t.Fatalf("expected 4-byte entry text, got %q (ok=%v)", text, ok)
	}
}

func TestListEntryTruncatedText(t *testing.T) {
	// The entry declares 32 text bytes, but the chunk body holds 4.
	body := append([]byte("INFO"), "IART"...)
	body = appendUint32LE(body, 32)
	body = append(body, 'a', 'b', 'c', 'd')

	data := containerBytes(testChunk{id: "LIST", body: body})

	_, err := Parse(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error for overlong entry text")
	}
}
