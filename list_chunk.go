package riffscan

import "fmt"

// See http://bwfmetaedit.sourceforge.net/listinfo.html
var (
	markerIART    = [4]byte{'I', 'A', 'R', 'T'}
	markerISFT    = [4]byte{'I', 'S', 'F', 'T'}
	markerICRD    = [4]byte{'I', 'C', 'R', 'D'}
	markerICOP    = [4]byte{'I', 'C', 'O', 'P'}
	markerIARL    = [4]byte{'I', 'A', 'R', 'L'}
	markerINAM    = [4]byte{'I', 'N', 'A', 'M'}
	markerIENG    = [4]byte{'I', 'E', 'N', 'G'}
	markerIGNR    = [4]byte{'I', 'G', 'N', 'R'}
	markerIPRD    = [4]byte{'I', 'P', 'R', 'D'}
	markerISRC    = [4]byte{'I', 'S', 'R', 'C'}
	markerISBJ    = [4]byte{'I', 'S', 'B', 'J'}
	markerICMT    = [4]byte{'I', 'C', 'M', 'T'}
	markerITRK    = [4]byte{'I', 'T', 'R', 'K'}
	markerITRKBug = [4]byte{'i', 't', 'r', 'k'}
	markerITCH    = [4]byte{'I', 'T', 'C', 'H'}
	markerIKEY    = [4]byte{'I', 'K', 'E', 'Y'}
	markerIMED    = [4]byte{'I', 'M', 'E', 'D'}
)

// ListEntry is one decoded (tag, size, text) record of a LIST body. Text is
// trimmed of its NUL terminator.
type ListEntry struct {
	ID   [4]byte
	Size uint32
	Text string
}

// Metadata holds the textual INFO entries of a LIST chunk.
type Metadata struct {
	Artist       string
	Title        string
	Comments     string
	Copyright    string
	CreationDate string
	Engineer     string
	Technician   string
	Genre        string
	Keywords     string
	Medium       string
	Product      string
	Subject      string
	Software     string
	Source       string
	Location     string
	TrackNbr     string
}

// ListEntries returns the decoded LIST records in stream order, or nil when
// the container held no LIST chunk.
func (s FieldStore) ListEntries() []ListEntry {
	var entries []ListEntry

	for i := 0; ; i++ {
		prefix := fmt.Sprintf("list.entry%d", i)

		id, ok := s.FourCC(prefix + ".tag_id")
		if !ok {
			break
		}

		size, _ := s.U32(prefix + ".text_size")
		text, _ := s.Text(prefix + ".text")

		entries = append(entries, ListEntry{
			ID:   id,
			Size: size,
			Text: nullTermStr([]byte(text)),
		})
	}

	return entries
}

// Metadata maps the INFO entries of a decoded LIST chunk onto the known
// marker set, or nil when no LIST/INFO chunk was present.
func (s FieldStore) Metadata() *Metadata {
	listType, ok := s.FourCC("list.list_type")
	if !ok || listType != CIDInfo {
		// TODO: support adtl sub-records
		return nil
	}

	meta := &Metadata{}

	for _, entry := range s.ListEntries() {
		switch entry.ID {
		case markerIARL:
			meta.Location = entry.Text
		case markerIART:
			meta.Artist = entry.Text
		case markerISFT:
			meta.Software = entry.Text
		case markerICRD:
			meta.CreationDate = entry.Text
		case markerICOP:
			meta.Copyright = entry.Text
		case markerINAM:
			meta.Title = entry.Text
		case markerIENG:
			meta.Engineer = entry.Text
		case markerIGNR:
			meta.Genre = entry.Text
		case markerIPRD:
			meta.Product = entry.Text
		case markerISRC:
			meta.Source = entry.Text
		case markerISBJ:
			meta.Subject = entry.Text
		case markerICMT:
			meta.Comments = entry.Text
		case markerITRK, markerITRKBug:
			meta.TrackNbr = entry.Text
		case markerITCH:
			meta.Technician = entry.Text
		case markerIKEY:
			meta.Keywords = entry.Text
		case markerIMED:
			meta.Medium = entry.Text
		}
	}

	return meta
}
