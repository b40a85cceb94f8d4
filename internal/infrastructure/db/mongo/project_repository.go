package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
)

const projectsCollection = "projects"

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectsCollection)}
}

// mongoProject keeps techs and images in their delimiter-encoded scalar form,
// matching the legacy single-column layout the pipeline round-trips through.
type mongoProject struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	TitleEN        string             `bson:"title_en,omitempty"`
	DescriptionEN  string             `bson:"description_en,omitempty"`
	Techs          string             `bson:"techs"`
	RepoURL        string             `bson:"repo_url,omitempty"`
	LiveURL        string             `bson:"live_url,omitempty"`
	Images         string             `bson:"images,omitempty"`
	ImageURL       string             `bson:"image_url,omitempty"`
	MainImageIndex int                `bson:"main_image_index"`
	CreatedAt      int64              `bson:"created_at"`
}

func (r *MongoProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	doc := toMongoProject(p)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return fromMongoProject(&mp), nil
}

func (r *MongoProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*domain.Project
	for cursor.Next(ctx) {
		var mp mongoProject
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, fromMongoProject(&mp))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *MongoProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	doc := toMongoProject(p)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func toMongoProject(p *domain.Project) mongoProject {
	mp := mongoProject{
		Title:          p.Title,
		Description:    p.Description,
		TitleEN:        p.TitleEN,
		DescriptionEN:  p.DescriptionEN,
		Techs:          p.Techs,
		RepoURL:        p.RepoURL,
		LiveURL:        p.LiveURL,
		Images:         p.Images,
		ImageURL:       p.ImageURL,
		MainImageIndex: p.MainImageIndex,
		CreatedAt:      p.CreatedAt.Unix(),
	}
	if p.CreatedAt.IsZero() {
		mp.CreatedAt = 0
	}
	if p.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
			mp.ID = oid
		}
	}
	return mp
}

func fromMongoProject(mp *mongoProject) *domain.Project {
	return &domain.Project{
		ID:             mp.ID.Hex(),
		Title:          mp.Title,
		Description:    mp.Description,
		TitleEN:        mp.TitleEN,
		DescriptionEN:  mp.DescriptionEN,
		Techs:          mp.Techs,
		RepoURL:        mp.RepoURL,
		LiveURL:        mp.LiveURL,
		Images:         mp.Images,
		ImageURL:       mp.ImageURL,
		MainImageIndex: mp.MainImageIndex,
		CreatedAt:      unixToTime(mp.CreatedAt),
	}
}
