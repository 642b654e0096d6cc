package media

type Kind int

const (
	Image Kind = iota
	Audio
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Audio:
		return "audio"
	default:
		return "unknown"
	}
}

// Slot describes one media field of a resource: the multipart field it is
// read from, the object store folder it lands in and what it may contain.
type Slot struct {
	Field  string
	Folder string
	Kind   Kind
}

var (
	ArticleImage     = Slot{Field: "image", Folder: "articles", Kind: Image}
	CoordinatorImage = Slot{Field: "image", Folder: "coordinators", Kind: Image}
	MemoryImage      = Slot{Field: "image", Folder: "memories", Kind: Image}
	AudioFile        = Slot{Field: "audio", Folder: "audio", Kind: Audio}
	AudioThumbnail   = Slot{Field: "thumbnail", Folder: "audio-thumbnails", Kind: Image}
)
