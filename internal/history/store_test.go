package history

import (
	"fmt"
	"sync"
	"testing"
)

func TestAppendAndRecords(t *testing.T) {
	s := NewStore()

	s.Append("chat1", Record{Original: "hello", SourceLanguage: "en", TargetLanguage: "es", Translated: "hola"})
	s.Append("chat1", Record{Original: "world", SourceLanguage: "en", TargetLanguage: "es", Translated: "mundo"})

	records := s.Records("chat1")
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Translated != "hola" || records[1].Translated != "mundo" {
		t.Error("records out of append order")
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be stamped on append")
	}
}

func TestEmptySessionUsesDefault(t *testing.T) {
	s := NewStore()
	s.Append("", Record{Original: "hi", Translated: "salut"})

	if got := s.Records(DefaultSession); len(got) != 1 {
		t.Errorf("default session has %d records, want 1", len(got))
	}
	if got := s.Records(""); len(got) != 1 {
		t.Errorf("empty key should read the default session, got %d records", len(got))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStore()
	s.Append("a", Record{Original: "one"})
	s.Append("b", Record{Original: "two"})
	s.Append("b", Record{Original: "three"})

	if len(s.Records("a")) != 1 || len(s.Records("b")) != 2 {
		t.Error("sessions leak records into each other")
	}
	if len(s.Sessions()) != 2 {
		t.Errorf("Sessions() = %v", s.Sessions())
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append("chat", Record{Original: "x", Translated: "y"})

	records := s.Records("chat")
	records[0].Translated = "mutated"

	if s.Records("chat")[0].Translated != "y" {
		t.Error("Records must return a copy, not the backing slice")
	}
}

func TestConcurrentAppends(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session := fmt.Sprintf("chat%d", n%2)
			for j := 0; j < 100; j++ {
				s.Append(session, Record{Original: "msg"})
			}
		}(i)
	}
	wg.Wait()

	total := len(s.Records("chat0")) + len(s.Records("chat1"))
	if total != 1000 {
		t.Errorf("lost appends: got %d records, want 1000", total)
	}
}
