package model

import "time"

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Book struct {
	ID              int    `json:"id" db:"id"`
	BookUid         string `json:"bookUid" db:"book_uid"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	Genre           string `json:"genre" db:"genre"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type RecordStatus string

const (
	RecordStatusBorrowed RecordStatus = "BORROWED"
	RecordStatusReturned RecordStatus = "RETURNED"
	RecordStatusOverdue  RecordStatus = "OVERDUE"
)

type BorrowingRecord struct {
	ID         int          `json:"id" db:"id"`
	RecordUid  string       `json:"recordUid" db:"record_uid"`
	BookID     int          `json:"bookId" db:"book_id"`
	Username   string       `json:"username" db:"username"`
	Status     RecordStatus `json:"status" db:"status"`
	BorrowedAt time.Time    `json:"borrowedAt" db:"borrowed_at"`
	DueDate    time.Time    `json:"dueDate" db:"due_date"`
	ReturnedAt *time.Time   `json:"returnedAt,omitempty" db:"returned_at"`
	IssuedBy   string       `json:"issuedBy" db:"issued_by"`
}

type OverdueRecord struct {
	BorrowingRecord `json:",inline"`
	DaysOverdue     int `json:"daysOverdue"`
}

type IssueBookRequest struct {
	BookUid  string `json:"bookUid" validate:"required,uuid"`
	Username string `json:"username" validate:"required"`
	DueDate  string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

type ChallengeType string

const (
	ChallengeBookCount        ChallengeType = "BOOK_COUNT"
	ChallengeGenreExploration ChallengeType = "GENRE_EXPLORATION"
	ChallengeTimeBased        ChallengeType = "TIME_BASED"
	ChallengeClassCompetition ChallengeType = "CLASS_COMPETITION"
	ChallengeHouseCompetition ChallengeType = "HOUSE_COMPETITION"
)

type ChallengeStatus string

const (
	ChallengeStatusActive    ChallengeStatus = "ACTIVE"
	ChallengeStatusCompleted ChallengeStatus = "COMPLETED"
	ChallengeStatusCancelled ChallengeStatus = "CANCELLED"
)

type Challenge struct {
	ID           int             `json:"id" db:"id"`
	ChallengeUid string          `json:"challengeUid" db:"challenge_uid"`
	Name         string          `json:"name" db:"name"`
	Type         ChallengeType   `json:"type" db:"challenge_type"`
	TargetCount  *int            `json:"targetCount,omitempty" db:"target_count"`
	StartDate    time.Time       `json:"startDate" db:"start_date"`
	EndDate      time.Time       `json:"endDate" db:"end_date"`
	Status       ChallengeStatus `json:"status" db:"status"`
	BadgeName    *string         `json:"badgeName,omitempty" db:"badge_name"`
	BadgeIcon    *string         `json:"badgeIcon,omitempty" db:"badge_icon"`
	CreatedBy    string          `json:"createdBy" db:"created_by"`
}

type CreateChallengeRequest struct {
	Name        string        `json:"name" validate:"required"`
	Type        ChallengeType `json:"type" validate:"required,oneof=BOOK_COUNT GENRE_EXPLORATION TIME_BASED CLASS_COMPETITION HOUSE_COMPETITION"`
	TargetCount *int          `json:"targetCount" validate:"omitempty,gt=0"`
	StartDate   string        `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string        `json:"endDate" validate:"required,datetime=2006-01-02"`
	BadgeName   *string       `json:"badgeName"`
	BadgeIcon   *string       `json:"badgeIcon"`
}

type Participation struct {
	ID               int        `json:"id" db:"id"`
	ParticipationUid string     `json:"participationUid" db:"participation_uid"`
	ChallengeID      int        `json:"challengeId" db:"challenge_id"`
	Username         string     `json:"username" db:"username"`
	Progress         int        `json:"progress" db:"progress"`
	Completed        bool       `json:"completed" db:"completed"`
	CompletedAt      *time.Time `json:"completedAt,omitempty" db:"completed_at"`
	JoinedAt         time.Time  `json:"joinedAt" db:"joined_at"`
}

type AdvanceProgressRequest struct {
	Delta int `json:"delta" validate:"required,gt=0"`
}

// AdvanceProgressResponse carries the badge only when this call completed the challenge.
type AdvanceProgressResponse struct {
	Participation Participation `json:"participation"`
	Badge         *Badge        `json:"badge,omitempty"`
}

type Badge struct {
	ID          int       `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	BadgeName   string    `json:"badgeName" db:"badge_name"`
	BadgeIcon   string    `json:"badgeIcon" db:"badge_icon"`
	ChallengeID *int      `json:"challengeId,omitempty" db:"challenge_id"`
	EarnedAt    time.Time `json:"earnedAt" db:"earned_at"`
}

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

type Review struct {
	ID          int          `json:"id" db:"id"`
	ReviewUid   string       `json:"reviewUid" db:"review_uid"`
	BookID      int          `json:"bookId" db:"book_id"`
	Username    string       `json:"username" db:"username"`
	Rating      int          `json:"rating" db:"rating"`
	Text        *string      `json:"text,omitempty" db:"review_text"`
	Status      ReviewStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	ModeratedBy *string      `json:"moderatedBy,omitempty" db:"moderated_by"`
	ModeratedAt *time.Time   `json:"moderatedAt,omitempty" db:"moderated_at"`
}

type CreateReviewRequest struct {
	Rating int     `json:"rating" validate:"required,min=1,max=5"`
	Text   *string `json:"text"`
}

type ModerateReviewRequest struct {
	Decision ReviewStatus `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
}

type BulkApproveRequest struct {
	ReviewUids []string `json:"reviewUids" validate:"required,min=1,dive,uuid"`
}

type BulkApproveResponse struct {
	Approved int `json:"approved"`
	Skipped  int `json:"skipped"`
}

// BookReturnedEvent is published after a successful return and drives
// BOOK_COUNT challenge progress.
type BookReturnedEvent struct {
	RecordUid string `json:"recordUid"`
	BookID    int    `json:"bookId"`
	Username  string `json:"username"`
}
