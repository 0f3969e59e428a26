package repository

import (
	"time"

	"gorm.io/gorm"

	"hbnb/internal/domain"
)

type userModel struct {
	ID           string    `gorm:"column:id;type:varchar(36);primaryKey"`
	FirstName    string    `gorm:"column:first_name;size:50;not null"`
	LastName     string    `gorm:"column:last_name;size:50;not null"`
	Email        string    `gorm:"column:email;size:120;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:128;not null"`
	IsAdmin      bool      `gorm:"column:is_admin;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (userModel) TableName() string { return "users" }

type placeModel struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Title       string    `gorm:"column:title;size:100;not null"`
	Description string    `gorm:"column:description;type:text"`
	Price       float64   `gorm:"column:price;not null"`
	Latitude    float64   `gorm:"column:latitude;not null"`
	Longitude   float64   `gorm:"column:longitude;not null"`
	OwnerID     string    `gorm:"column:owner_id;type:varchar(36);not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`

	Owner     *userModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Amenities []amenityModel `gorm:"many2many:place_amenity;joinForeignKey:PlaceID;joinReferences:AmenityID"`
	Reviews   []reviewModel  `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}

func (placeModel) TableName() string { return "places" }

type reviewModel struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Text      string    `gorm:"column:text;type:text;not null"`
	Rating    int       `gorm:"column:rating;not null"`
	PlaceID   string    `gorm:"column:place_id;type:varchar(36);not null;uniqueIndex:idx_review_user_place,priority:2"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:idx_review_user_place,priority:1"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`

	User *userModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (reviewModel) TableName() string { return "reviews" }

type amenityModel struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Name      string    `gorm:"column:name;size:50;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (amenityModel) TableName() string { return "amenities" }

type placeAmenityModel struct {
	PlaceID   string `gorm:"column:place_id;type:varchar(36);primaryKey"`
	AmenityID string `gorm:"column:amenity_id;type:varchar(36);primaryKey;index"`
}

func (placeAmenityModel) TableName() string { return "place_amenity" }

// AutoMigrate creates or updates the schema for every entity table and
// the place_amenity association table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&placeModel{}, "Amenities", &placeAmenityModel{}); err != nil {
		return err
	}
	return db.AutoMigrate(&userModel{}, &amenityModel{}, &placeModel{}, &reviewModel{}, &placeAmenityModel{})
}

func toDomainUser(m userModel) domain.User {
	return domain.User{
		Base:         toBase(m.ID, m.CreatedAt, m.UpdatedAt),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        domain.NormalizeEmail(u.Email),
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomainPlace(m placeModel) domain.Place {
	p := domain.Place{
		Base:        toBase(m.ID, m.CreatedAt, m.UpdatedAt),
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		OwnerID:     m.OwnerID,
	}
	if m.Owner != nil {
		owner := toDomainUser(*m.Owner)
		p.Owner = &owner
	}
	for _, a := range m.Amenities {
		p.Amenities = append(p.Amenities, toDomainAmenity(a))
	}
	for _, r := range m.Reviews {
		p.Reviews = append(p.Reviews, toDomainReview(r))
	}
	return p
}

func toPlaceModel(p *domain.Place) placeModel {
	return placeModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toDomainReview(m reviewModel) domain.Review {
	r := domain.Review{
		Base:    toBase(m.ID, m.CreatedAt, m.UpdatedAt),
		Text:    m.Text,
		Rating:  m.Rating,
		PlaceID: m.PlaceID,
		UserID:  m.UserID,
	}
	if m.User != nil {
		author := toDomainUser(*m.User)
		r.Author = &author
	}
	return r
}

func toReviewModel(r *domain.Review) reviewModel {
	return reviewModel{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainAmenity(m amenityModel) domain.Amenity {
	return domain.Amenity{
		Base: toBase(m.ID, m.CreatedAt, m.UpdatedAt),
		Name: m.Name,
	}
}

func toAmenityModel(a *domain.Amenity) amenityModel {
	return amenityModel{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toBase(id string, createdAt, updatedAt time.Time) domain.Base {
	return domain.Base{ID: id, CreatedAt: createdAt.UTC(), UpdatedAt: updatedAt.UTC()}
}
