package contentapi

// Fixed per-type JSON shapes consumed by the front-end renderer. Every known
// block type serializes to exactly one of the value structs below; unknown
// types keep their raw decoded value.

type BlockDTO struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type LinkDTO struct {
	URL        string `json:"url"`
	IsExternal bool   `json:"is_external"`
}

type ImageDTO struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

type HeadingValue struct {
	Heading   string `json:"heading"`
	Alignment string `json:"alignment"`
}

type ParagraphValue struct {
	Content   string `json:"content"`
	ListStyle string `json:"list_style"`
}

type LeadValue struct {
	Content   string `json:"content"`
	Alignment string `json:"alignment"`
}

type QuoteValue struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position"`
}

type ImageBlockValue struct {
	Image   *ImageDTO `json:"image"`
	AltText string    `json:"alt_text"`
	Caption string    `json:"caption"`
}

type VideoValue struct {
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Autoplay bool   `json:"autoplay"`
}

type GalleryValue struct {
	Images  []ImageDTO `json:"images"`
	Layout  string     `json:"layout"`
	Caption string     `json:"caption"`
}

type TwoColumnValue struct {
	Ratio string     `json:"ratio"`
	Left  []BlockDTO `json:"left"`
	Right []BlockDTO `json:"right"`
}

type ContentWithImageValue struct {
	Image     *ImageDTO  `json:"image"`
	Alignment string     `json:"alignment"`
	Content   []BlockDTO `json:"content"`
}

type AccordionItemValue struct {
	Title   string     `json:"title"`
	Content []BlockDTO `json:"content"`
}

type AccordionValue struct {
	Items []AccordionItemValue `json:"items"`
}

type CardValue struct {
	Title string    `json:"title"`
	Text  string    `json:"text"`
	Image *ImageDTO `json:"image"`
	Link  LinkDTO   `json:"link"`
}

type CardGridValue struct {
	Title   string      `json:"title"`
	Columns int         `json:"columns"`
	Cards   []CardValue `json:"cards"`
}

type ButtonValue struct {
	Text  string  `json:"text"`
	Href  LinkDTO `json:"href"`
	Theme string  `json:"theme"`
	Size  string  `json:"size"`
}

type ButtonGroupValue struct {
	Alignment string        `json:"alignment"`
	Buttons   []ButtonValue `json:"buttons"`
}

type CTAButtonValue struct {
	Text string  `json:"text"`
	Href LinkDTO `json:"href"`
}

type CallToActionValue struct {
	Title  string         `json:"title"`
	Text   string         `json:"text"`
	Button CTAButtonValue `json:"button"`
}

type SpaceValue struct {
	Height int `json:"height"`
}

type DividerValue struct {
	Style string `json:"style"`
}

type EssenceImageValue struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type EssenceSectionValue struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CTAText     string             `json:"cta_text"`
	CTAHref     string             `json:"cta_href"`
	Image       *EssenceImageValue `json:"image"`
}

type GsapTextVideoValue struct {
	LeftText        string `json:"left_text"`
	RightText       string `json:"right_text"`
	VideoSrc        string `json:"video_src"`
	BackgroundColor string `json:"background_color"`
	BottomLeftText  string `json:"bottom_left_text"`
	BottomRightText string `json:"bottom_right_text"`
}

// Page-level responses.

type PageSummaryDTO struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type PageDetailDTO struct {
	ID                string     `json:"id"`
	Slug              string     `json:"slug"`
	Title             string     `json:"title"`
	Type              string     `json:"type"`
	SEOTitle          string     `json:"seo_title"`
	SearchDescription string     `json:"search_description"`
	HeroSectionData   *HeroData  `json:"hero_section_data"`
	Body              []BlockDTO `json:"body"`
}
