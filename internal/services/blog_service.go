package services

import (
	"slices"

	"noiratelier/internal/domain"
)

type BlogService struct {
	posts []domain.BlogPost
}

func NewBlogService(posts []domain.BlogPost) *BlogService {
	return &BlogService{posts: slices.Clone(posts)}
}

func (s *BlogService) List() []domain.BlogPost { return slices.Clone(s.posts) }

// Featured is the lead post of the blog index; ok is false when there are no posts.
func (s *BlogService) Featured() (domain.BlogPost, bool) {
	if len(s.posts) == 0 {
		return domain.BlogPost{}, false
	}
	return s.posts[0], true
}

// Others lists every post after the featured one.
func (s *BlogService) Others() []domain.BlogPost {
	if len(s.posts) < 2 {
		return []domain.BlogPost{}
	}
	return slices.Clone(s.posts[1:])
}

func (s *BlogService) Get(id string) (domain.BlogPost, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.BlogPost{}, false
}

// Related lists up to n other posts sharing the post's category.
func (s *BlogService) Related(post domain.BlogPost, n int) []domain.BlogPost {
	out := []domain.BlogPost{}
	for _, p := range s.posts {
		if len(out) == n {
			break
		}
		if p.ID != post.ID && p.Category == post.Category {
			out = append(out, p)
		}
	}
	return out
}
