package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Content   string             `bson:"content"`
	Image     string             `bson:"image,omitempty"`
	Likes     []Like             `bson:"likes"`
	Comments  []Comment          `bson:"comments"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type Like struct {
	UserID    primitive.ObjectID `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type Comment struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (p Post) LikedBy(userID primitive.ObjectID) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

func (p Post) FindComment(commentID primitive.ObjectID) (Comment, bool) {
	for _, comment := range p.Comments {
		if comment.ID == commentID {
			return comment, true
		}
	}
	return Comment{}, false
}
