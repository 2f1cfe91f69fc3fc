package content

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PageTypeHome     = "home"
	PageTypeStandard = "standard"
	PageTypePayments = "payments"
)

type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug  string `gorm:"not null;uniqueIndex" json:"slug"`
	Title string `gorm:"not null" json:"title"`
	Type  string `gorm:"not null;default:'standard';index" json:"type"`

	Status string `gorm:"not null;default:'live'" json:"status"`

	SEOTitle          string `gorm:"column:seo_title" json:"seo_title"`
	SearchDescription string `json:"search_description"`

	HeroID *uint     `gorm:"index" json:"-"`
	Hero   *MainHero `gorm:"foreignKey:HeroID" json:"-"`

	Blocks []PageBlock `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate derives the slug from the title when the editor left it empty.
func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = MakeSlug(p.Title)
	}
	return nil
}

// PageBlock is one unit of a page's body stream: a type tag plus the typed
// value bag the editor filled in. Container types nest further block
// sequences inside Value.
type PageBlock struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID    string `gorm:"type:uuid;not null;index" json:"page_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	Type  string         `gorm:"not null;index" json:"type"`
	Value datatypes.JSON `gorm:"not null;default:'{}'" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
