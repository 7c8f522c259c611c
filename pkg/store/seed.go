package store

import (
	"time"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/taxonomy"
)

// Seed replaces the store contents with the demo fixtures. Relative
// dates (task due dates, notification timestamps) are anchored on now.
// Safe to call multiple times; it resets counters to the seeded maximums
// and emits no change events.
func (s *Store) Seed(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := func(offset int) entity.Timestamp {
		return entity.At(now.AddDate(0, 0, offset))
	}
	on := func(year int, month time.Month, d int) entity.Timestamp {
		return entity.At(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}

	s.clients = []entity.Client{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Phone: "098-765-4321"},
	}

	s.documents = []entity.Document{
		{
			ID: 1, Title: "Initial Complaint", ClientID: 1,
			Category: string(taxonomy.CourtDocuments), SubCategory: "Pleadings",
			FileName: "initial_complaint.pdf", FileType: "application/pdf",
			FileURL: "/documents/initial_complaint.pdf", CreatedAt: on(2023, time.January, 15),
		},
		{
			ID: 2, Title: "Client Meeting Notes", ClientID: 2,
			Category: string(taxonomy.ClientCommunication), SubCategory: "Meeting Notes",
			FileName: "meeting_notes.docx",
			FileType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			FileURL:  "/documents/meeting_notes.docx", CreatedAt: on(2023, time.February, 20),
		},
		{
			ID: 3, Title: "Motion to Dismiss", ClientID: 1,
			Category: string(taxonomy.CourtDocuments), SubCategory: "Motions",
			FileName: "motion_to_dismiss.pdf", FileType: "application/pdf",
			FileURL: "/documents/motion_to_dismiss.pdf", CreatedAt: on(2023, time.March, 10),
		},
		{
			ID: 4, Title: "Settlement Proposal", ClientID: 2,
			Category: string(taxonomy.OpposingParty), SubCategory: "Settlement Offers",
			FileName: "settlement_proposal.xlsx",
			FileType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			FileURL:  "/documents/settlement_proposal.xlsx", CreatedAt: on(2023, time.April, 5),
		},
		{
			ID: 5, Title: "Case Timeline", ClientID: 1,
			Category: string(taxonomy.InternalNotes), SubCategory: "Case Strategy",
			FileName: "case_timeline.pptx",
			FileType: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
			FileURL:  "/documents/case_timeline.pptx", CreatedAt: on(2023, time.May, 1),
		},
	}

	s.events = []entity.Event{
		{ID: 1, Title: "Client Meeting", Date: on(2023, time.June, 15), ClientID: 1},
		{ID: 2, Title: "Court Hearing", Date: on(2023, time.June, 20), ClientID: 2},
		{ID: 3, Title: "Document Submission Deadline", Date: on(2023, time.June, 25), ClientID: 1},
	}

	s.tasks = []entity.Task{
		{ID: 1, Title: "Review contract for Client A", DueDate: day(3)},
		{ID: 2, Title: "Prepare for court hearing", DueDate: day(5)},
		{ID: 3, Title: "File motion for Client B", Completed: true, DueDate: day(-1)},
	}

	s.notifications = []entity.Notification{
		{ID: 1, Title: "New client added", Timestamp: entity.At(now)},
		{ID: 2, Title: "Document deadline approaching", Timestamp: day(-1)},
		{ID: 3, Title: "Court hearing scheduled", Read: true, Timestamp: day(-2)},
	}

	s.billable = map[int64]float64{}

	s.nextClientID = 2
	s.nextDocumentID = 5
	s.nextEventID = 3
	s.nextTaskID = 3
	s.nextNotificationID = 3
}
