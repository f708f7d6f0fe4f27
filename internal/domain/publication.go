package domain

import "time"

// DestinationTarget is one configured publish destination.
type DestinationTarget struct {
	Locale      string `yaml:"locale"`
	DisplayName string `yaml:"name"`
	Flag        string `yaml:"flag"`
	Address     string `yaml:"address"`
}

// Title is the human label used in operator notifications.
func (d DestinationTarget) Title() string {
	if d.Flag == "" {
		return d.DisplayName
	}
	return d.Flag + " " + d.DisplayName
}

type PublishOutcome struct {
	Target      DestinationTarget
	Succeeded   bool
	ErrorDetail string
}

// PublishReport holds one outcome per destination, in configuration order.
type PublishReport []PublishOutcome

func (r PublishReport) Failed() int {
	n := 0
	for _, o := range r {
		if !o.Succeeded {
			n++
		}
	}
	return n
}

// PublicationRecord is a finished fan-out kept for history and broadcast.
type PublicationRecord struct {
	ID         string
	Submission Submission
	Report     PublishReport
	CreatedAt  time.Time
}

// PublicationSummary is a history row.
type PublicationSummary struct {
	ID          string    `db:"id"`
	ProductName string    `db:"product_name"`
	Price       string    `db:"price"`
	Category    string    `db:"category"`
	Succeeded   int       `db:"succeeded"`
	Failed      int       `db:"failed"`
	CreatedAt   time.Time `db:"created_at"`
}
