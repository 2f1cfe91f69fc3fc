package contentapi

import (
	"encoding/json"
	"strings"

	"shambala-backend/internal/domain/content"
)

// Serializer projects an ordered block stream into the fixed per-type JSON
// shapes. It is pure: it only reads the in-memory blocks it is handed and
// never touches the database, so a page read serializes in one pass.
type Serializer struct {
	// MediaBase prefixes relative media paths in the two marketing sections.
	MediaBase string
}

func NewSerializer(mediaBase string) *Serializer {
	return &Serializer{MediaBase: strings.TrimRight(mediaBase, "/")}
}

// Raw editor-side value bags. Fields the editor left empty decode to zero
// values and get their documented defaults on the way out.

type rawBlock struct {
	ID    string          `json:"id"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type rawLink struct {
	Page         string `json:"page"`
	ExternalLink string `json:"external_link"`
}

type rawImage struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

// Blocks serializes a page body in order. Nil and empty inputs both yield an
// empty (non-null) list.
func (s *Serializer) Blocks(blocks []content.PageBlock) []BlockDTO {
	out := make([]BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, s.serialize(b.ID, b.Type, json.RawMessage(b.Value)))
	}
	return out
}

func (s *Serializer) nested(raw []rawBlock) []BlockDTO {
	out := make([]BlockDTO, 0, len(raw))
	for _, b := range raw {
		out = append(out, s.serialize(b.ID, b.Type, b.Value))
	}
	return out
}

func (s *Serializer) serialize(id, blockType string, raw json.RawMessage) BlockDTO {
	dto := BlockDTO{ID: id, Type: blockType}

	switch blockType {
	case "heading":
		var v struct {
			Heading   string `json:"heading"`
			Alignment string `json:"alignment"`
		}
		decode(raw, &v)
		dto.Value = HeadingValue{
			Heading:   v.Heading,
			Alignment: defaultString(v.Alignment, "left"),
		}

	case "paragraph":
		var v struct {
			Content   string `json:"content"`
			ListStyle string `json:"list_style"`
		}
		decode(raw, &v)
		dto.Value = ParagraphValue{Content: v.Content, ListStyle: v.ListStyle}

	case "lead":
		var v struct {
			Content   string `json:"content"`
			Alignment string `json:"alignment"`
		}
		decode(raw, &v)
		dto.Value = LeadValue{
			Content:   v.Content,
			Alignment: defaultString(v.Alignment, "left"),
		}

	case "quote":
		var v struct {
			Quote    string `json:"quote"`
			Author   string `json:"author"`
			Position string `json:"position"`
		}
		decode(raw, &v)
		dto.Value = QuoteValue{Quote: v.Quote, Author: v.Author, Position: v.Position}

	case "image":
		var v struct {
			Image   *rawImage `json:"image"`
			AltText string    `json:"alt_text"`
			Caption string    `json:"caption"`
		}
		decode(raw, &v)
		img := s.imageDTO(v.Image, v.AltText)
		altText := v.AltText
		if altText == "" && v.Image != nil {
			altText = v.Image.Title
		}
		dto.Value = ImageBlockValue{Image: img, AltText: altText, Caption: v.Caption}

	case "video":
		var v struct {
			URL      string `json:"url"`
			Caption  string `json:"caption"`
			Autoplay bool   `json:"autoplay"`
		}
		decode(raw, &v)
		dto.Value = VideoValue{URL: v.URL, Caption: v.Caption, Autoplay: v.Autoplay}

	case "image_gallery":
		var v struct {
			Images  []rawImage `json:"images"`
			Layout  string     `json:"layout"`
			Caption string     `json:"caption"`
		}
		decode(raw, &v)
		images := make([]ImageDTO, 0, len(v.Images))
		for i := range v.Images {
			if img := s.imageDTO(&v.Images[i], ""); img != nil {
				images = append(images, *img)
			}
		}
		dto.Value = GalleryValue{
			Images:  images,
			Layout:  defaultString(v.Layout, "slider"),
			Caption: v.Caption,
		}

	case "two_column":
		var v struct {
			Ratio string     `json:"ratio"`
			Left  []rawBlock `json:"left"`
			Right []rawBlock `json:"right"`
		}
		decode(raw, &v)
		dto.Value = TwoColumnValue{
			Ratio: defaultString(v.Ratio, "50-50"),
			Left:  s.nested(v.Left),
			Right: s.nested(v.Right),
		}

	case "content_with_image":
		var v struct {
			Image     *rawImage  `json:"image"`
			Alignment string     `json:"alignment"`
			Content   []rawBlock `json:"content"`
		}
		decode(raw, &v)
		dto.Value = ContentWithImageValue{
			Image:     s.imageDTO(v.Image, ""),
			Alignment: defaultString(v.Alignment, "left"),
			Content:   s.nested(v.Content),
		}

	case "accordion":
		var v struct {
			Items []struct {
				Title   string     `json:"title"`
				Content []rawBlock `json:"content"`
			} `json:"items"`
		}
		decode(raw, &v)
		items := make([]AccordionItemValue, 0, len(v.Items))
		for _, it := range v.Items {
			items = append(items, AccordionItemValue{
				Title:   it.Title,
				Content: s.nested(it.Content),
			})
		}
		dto.Value = AccordionValue{Items: items}

	case "card_grid":
		var v struct {
			Title   string `json:"title"`
			Columns int    `json:"columns"`
			Cards   []struct {
				Title string    `json:"title"`
				Text  string    `json:"text"`
				Image *rawImage `json:"image"`
				Link  *rawLink  `json:"link"`
			} `json:"cards"`
		}
		decode(raw, &v)
		cards := make([]CardValue, 0, len(v.Cards))
		for _, c := range v.Cards {
			cards = append(cards, CardValue{
				Title: c.Title,
				Text:  c.Text,
				Image: s.imageDTO(c.Image, ""),
				Link:  resolveLink(c.Link),
			})
		}
		columns := v.Columns
		if columns == 0 {
			columns = 3
		}
		dto.Value = CardGridValue{Title: v.Title, Columns: columns, Cards: cards}

	case "button":
		var v rawButton
		decode(raw, &v)
		dto.Value = buttonValue(v)

	case "button_group":
		var v struct {
			Alignment string      `json:"alignment"`
			Buttons   []rawButton `json:"buttons"`
		}
		decode(raw, &v)
		buttons := make([]ButtonValue, 0, len(v.Buttons))
		for _, b := range v.Buttons {
			buttons = append(buttons, buttonValue(b))
		}
		dto.Value = ButtonGroupValue{
			Alignment: defaultString(v.Alignment, "left"),
			Buttons:   buttons,
		}

	case "call_to_action":
		var v struct {
			Title  string `json:"title"`
			Text   string `json:"text"`
			Button struct {
				Text string   `json:"text"`
				Href *rawLink `json:"href"`
			} `json:"button"`
		}
		decode(raw, &v)
		dto.Value = CallToActionValue{
			Title: v.Title,
			Text:  v.Text,
			Button: CTAButtonValue{
				Text: v.Button.Text,
				Href: resolveLink(v.Button.Href),
			},
		}

	case "space":
		var v struct {
			Height int `json:"height"`
		}
		decode(raw, &v)
		height := v.Height
		if height == 0 {
			height = 50
		}
		dto.Value = SpaceValue{Height: height}

	case "divider":
		var v struct {
			Style string `json:"style"`
		}
		decode(raw, &v)
		dto.Value = DividerValue{Style: defaultString(v.Style, "solid")}

	case "essence_section":
		var v struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			CTAText     string `json:"cta_text"`
			CTAHref     string `json:"cta_href"`
			Image       *struct {
				Src string `json:"src"`
				Alt string `json:"alt"`
			} `json:"image"`
		}
		decode(raw, &v)
		value := EssenceSectionValue{
			Title:       v.Title,
			Description: v.Description,
			CTAText:     v.CTAText,
			CTAHref:     v.CTAHref,
		}
		if v.Image != nil {
			value.Image = &EssenceImageValue{
				Src: s.absolutize(v.Image.Src),
				Alt: v.Image.Alt,
			}
		}
		dto.Value = value

	case "gsap_text_video":
		var v GsapTextVideoValue
		decode(raw, &v)
		v.VideoSrc = s.absolutize(v.VideoSrc)
		dto.Value = v

	default:
		// Unknown/future block types pass through untouched.
		var v any
		decode(raw, &v)
		dto.Value = v
	}

	return dto
}

type rawButton struct {
	Text  string   `json:"text"`
	Href  *rawLink `json:"href"`
	Theme string   `json:"theme"`
	Size  string   `json:"size"`
}

func buttonValue(v rawButton) ButtonValue {
	return ButtonValue{
		Text:  v.Text,
		Href:  resolveLink(v.Href),
		Theme: defaultString(v.Theme, "btn-primary"),
		Size:  v.Size,
	}
}

// resolveLink degrades an unset or unresolved link to "#" instead of failing.
func resolveLink(l *rawLink) LinkDTO {
	if l == nil {
		return LinkDTO{URL: "#", IsExternal: false}
	}
	if l.ExternalLink != "" {
		return LinkDTO{URL: l.ExternalLink, IsExternal: true}
	}
	if l.Page != "" {
		return LinkDTO{URL: "/" + strings.TrimLeft(l.Page, "/"), IsExternal: false}
	}
	return LinkDTO{URL: "#", IsExternal: false}
}

func (s *Serializer) imageDTO(img *rawImage, altOverride string) *ImageDTO {
	if img == nil || img.URL == "" {
		return nil
	}
	alt := altOverride
	if alt == "" {
		alt = img.Alt
	}
	if alt == "" {
		alt = img.Title
	}
	return &ImageDTO{
		URL:    img.URL,
		Title:  img.Title,
		Width:  img.Width,
		Height: img.Height,
		Alt:    alt,
	}
}

func (s *Serializer) absolutize(src string) string {
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	return s.MediaBase + "/" + strings.TrimLeft(src, "/")
}

// decode tolerates malformed values: the target keeps its zero fields and the
// serializer emits defaults, matching the never-raise contract.
func decode(raw json.RawMessage, target any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, target)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
