package contentapi

import (
	"encoding/json"
	"reflect"
	"testing"

	"shambala-backend/internal/domain/content"

	"gorm.io/datatypes"
)

func block(id, blockType, value string) content.PageBlock {
	return content.PageBlock{ID: id, Type: blockType, Value: datatypes.JSON(value)}
}

func TestBlocksPreserveOrder(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	blocks := []content.PageBlock{
		block("b1", "heading", `{"heading":"One"}`),
		block("b2", "paragraph", `{"content":"<p>two</p>"}`),
		block("b3", "divider", `{}`),
	}

	out := s.Blocks(blocks)
	if len(out) != 3 {
		t.Fatalf("got %d blocks, want 3", len(out))
	}
	for i, id := range []string{"b1", "b2", "b3"} {
		if out[i].ID != id {
			t.Errorf("block %d has id %q, want %q", i, out[i].ID, id)
		}
	}
}

func TestBlocksSerializationIsDeterministic(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	blocks := []content.PageBlock{
		block("b1", "heading", `{"heading":"One","alignment":"center"}`),
		block("b2", "two_column", `{"left":[{"id":"n1","type":"paragraph","value":{"content":"x"}}],"right":[]}`),
		block("b3", "mystery_widget", `{"anything":[1,2,3]}`),
	}

	first, err := json.Marshal(s.Blocks(blocks))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(s.Blocks(blocks))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("same input serialized to different bytes:\n%s\n%s", first, second)
	}
}

func TestDefaultsForMissingOptionals(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")

	out := s.Blocks([]content.PageBlock{
		block("b1", "heading", `{"heading":"H"}`),
		block("b2", "image_gallery", `{"images":[]}`),
		block("b3", "two_column", `{}`),
		block("b4", "card_grid", `{"cards":[]}`),
		block("b5", "space", `{}`),
		block("b6", "divider", `{}`),
		block("b7", "button", `{"text":"Go"}`),
	})

	if v := out[0].Value.(HeadingValue); v.Alignment != "left" {
		t.Errorf("heading alignment = %q, want left", v.Alignment)
	}
	if v := out[1].Value.(GalleryValue); v.Layout != "slider" {
		t.Errorf("gallery layout = %q, want slider", v.Layout)
	}
	if v := out[2].Value.(TwoColumnValue); v.Ratio != "50-50" {
		t.Errorf("two_column ratio = %q, want 50-50", v.Ratio)
	}
	if v := out[3].Value.(CardGridValue); v.Columns != 3 {
		t.Errorf("card_grid columns = %d, want 3", v.Columns)
	}
	if v := out[4].Value.(SpaceValue); v.Height != 50 {
		t.Errorf("space height = %d, want 50", v.Height)
	}
	if v := out[5].Value.(DividerValue); v.Style != "solid" {
		t.Errorf("divider style = %q, want solid", v.Style)
	}
	btn := out[6].Value.(ButtonValue)
	if btn.Theme != "btn-primary" {
		t.Errorf("button theme = %q, want btn-primary", btn.Theme)
	}
	if btn.Href.URL != "#" || btn.Href.IsExternal {
		t.Errorf("unset button link = %+v, want #/internal", btn.Href)
	}
}

func TestUnknownTypePassesThrough(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")

	out := s.Blocks([]content.PageBlock{
		block("b1", "countdown_timer", `{"target":"2030-01-01","style":{"bold":true}}`),
	})

	if out[0].Type != "countdown_timer" {
		t.Fatalf("type = %q", out[0].Type)
	}
	want := map[string]any{
		"target": "2030-01-01",
		"style":  map[string]any{"bold": true},
	}
	if !reflect.DeepEqual(out[0].Value, want) {
		t.Errorf("pass-through value = %#v, want %#v", out[0].Value, want)
	}
}

func TestMalformedValueYieldsDefaults(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")

	out := s.Blocks([]content.PageBlock{
		block("b1", "heading", `not even json`),
	})

	v, ok := out[0].Value.(HeadingValue)
	if !ok {
		t.Fatalf("value type %T", out[0].Value)
	}
	if v.Heading != "" || v.Alignment != "left" {
		t.Errorf("malformed heading value = %+v", v)
	}
}

func TestNestedBlocksRecurse(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")

	out := s.Blocks([]content.PageBlock{
		block("b1", "two_column", `{
			"ratio":"66-33",
			"left":[{"id":"n1","type":"heading","value":{"heading":"Inner"}}],
			"right":[{"id":"n2","type":"unknown_kind","value":{"k":"v"}}]
		}`),
		block("b2", "accordion", `{
			"items":[{"title":"Q1","content":[{"id":"n3","type":"paragraph","value":{"content":"A1"}}]}]
		}`),
		block("b3", "content_with_image", `{
			"alignment":"right",
			"image":{"url":"http://cdn.test/media/pic.jpg","title":"Pic"},
			"content":[{"id":"n4","type":"lead","value":{"content":"L"}}]
		}`),
	})

	two := out[0].Value.(TwoColumnValue)
	if two.Ratio != "66-33" {
		t.Errorf("ratio = %q", two.Ratio)
	}
	if len(two.Left) != 1 || two.Left[0].Value.(HeadingValue).Heading != "Inner" {
		t.Errorf("left column not recursed: %+v", two.Left)
	}
	if len(two.Right) != 1 || two.Right[0].Type != "unknown_kind" {
		t.Errorf("right column lost pass-through block: %+v", two.Right)
	}

	acc := out[1].Value.(AccordionValue)
	if len(acc.Items) != 1 || len(acc.Items[0].Content) != 1 {
		t.Fatalf("accordion items = %+v", acc.Items)
	}
	if acc.Items[0].Content[0].Value.(ParagraphValue).Content != "A1" {
		t.Errorf("accordion content not recursed")
	}

	cwi := out[2].Value.(ContentWithImageValue)
	if cwi.Image == nil || cwi.Image.URL != "http://cdn.test/media/pic.jpg" {
		t.Errorf("content_with_image image = %+v", cwi.Image)
	}
	if len(cwi.Content) != 1 || cwi.Content[0].Value.(LeadValue).Content != "L" {
		t.Errorf("content_with_image content not recursed: %+v", cwi.Content)
	}
}

func TestImageAltFallbacks(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")

	out := s.Blocks([]content.PageBlock{
		block("b1", "image", `{"image":{"url":"u","title":"Title"},"alt_text":"Override"}`),
		block("b2", "image", `{"image":{"url":"u","title":"Title","alt":"FromImage"}}`),
		block("b3", "image", `{"image":{"url":"u","title":"Title"}}`),
		block("b4", "image", `{"alt_text":"NoImage"}`),
	})

	if v := out[0].Value.(ImageBlockValue); v.Image.Alt != "Override" {
		t.Errorf("alt override lost: %q", v.Image.Alt)
	}
	if v := out[1].Value.(ImageBlockValue); v.Image.Alt != "FromImage" {
		t.Errorf("image alt lost: %q", v.Image.Alt)
	}
	if v := out[2].Value.(ImageBlockValue); v.Image.Alt != "Title" {
		t.Errorf("title fallback lost: %q", v.Image.Alt)
	}
	if v := out[3].Value.(ImageBlockValue); v.Image != nil {
		t.Errorf("missing image should serialize as nil, got %+v", v.Image)
	}
}

func TestLinkResolution(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")

	out := s.Blocks([]content.PageBlock{
		block("b1", "button", `{"text":"Ext","href":{"external_link":"https://x.test"}}`),
		block("b2", "button", `{"text":"Int","href":{"page":"about"}}`),
		block("b3", "button", `{"text":"None","href":{}}`),
	})

	ext := out[0].Value.(ButtonValue).Href
	if ext.URL != "https://x.test" || !ext.IsExternal {
		t.Errorf("external link = %+v", ext)
	}
	internal := out[1].Value.(ButtonValue).Href
	if internal.URL != "/about" || internal.IsExternal {
		t.Errorf("page link = %+v", internal)
	}
	if none := out[2].Value.(ButtonValue).Href; none.URL != "#" {
		t.Errorf("empty link = %+v", none)
	}
}

func TestMediaAbsolutization(t *testing.T) {
	s := NewSerializer("http://cdn.test/media/")

	out := s.Blocks([]content.PageBlock{
		block("b1", "essence_section", `{"title":"T","image":{"src":"essence/bg.jpg","alt":"a"}}`),
		block("b2", "essence_section", `{"image":{"src":"https://other.test/bg.jpg"}}`),
		block("b3", "gsap_text_video", `{"left_text":"L","video_src":"videos/loop.mp4"}`),
		block("b4", "gsap_text_video", `{"video_src":""}`),
	})

	if v := out[0].Value.(EssenceSectionValue); v.Image.Src != "http://cdn.test/media/essence/bg.jpg" {
		t.Errorf("relative src = %q", v.Image.Src)
	}
	if v := out[1].Value.(EssenceSectionValue); v.Image.Src != "https://other.test/bg.jpg" {
		t.Errorf("absolute src rewritten: %q", v.Image.Src)
	}
	if v := out[2].Value.(GsapTextVideoValue); v.VideoSrc != "http://cdn.test/media/videos/loop.mp4" {
		t.Errorf("video src = %q", v.VideoSrc)
	}
	if v := out[3].Value.(GsapTextVideoValue); v.VideoSrc != "" {
		t.Errorf("empty video src became %q", v.VideoSrc)
	}
}

func TestEmptyBodySerializesToEmptyList(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")

	out := s.Blocks(nil)
	if out == nil {
		t.Fatal("nil slice would render as JSON null")
	}
	if len(out) != 0 {
		t.Errorf("got %d blocks", len(out))
	}
}
