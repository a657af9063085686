package repos

import (
	"github.com/jmoiron/sqlx"
)

type ContactRepo struct{ db *sqlx.DB }

func NewContactRepo(db *sqlx.DB) *ContactRepo { return &ContactRepo{db: db} }

type ContactMessage struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Subject   string `db:"subject"`
	Message   string `db:"message"`
	CreatedAt string `db:"created_at"`
}

func (r *ContactRepo) Create(m ContactMessage) error {
	_, err := r.db.NamedExec(`
		INSERT INTO contact_messages(id,name,email,subject,message,created_at)
		VALUES(:id,:name,:email,:subject,:message,CURRENT_TIMESTAMP)
	`, m)
	return err
}

// Subscribe records a newsletter address; repeated sign-ups are ignored.
// The returned bool is false when the address was already subscribed.
func (r *ContactRepo) Subscribe(email string) (bool, error) {
	res, err := r.db.Exec(`
		INSERT INTO subscribers(email,created_at) VALUES(LOWER(?),CURRENT_TIMESTAMP)
		ON CONFLICT(email) DO NOTHING
	`, email)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
