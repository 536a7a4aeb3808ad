package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/utdemir/composable-indexes/internal/session"
	"github.com/utdemir/composable-indexes/snapshot"
)

func main() {
	var (
		cmd  = flag.String("cmd", "", "command to run: open | touch | lookup | stale")
		data = flag.String("data", "sessions.db", "bbolt snapshot file")
		user = flag.String("user", "", "user id (open)")
		ref  = flag.String("ref", "", "session reference (touch, lookup)")
		ttl  = flag.Duration("ttl", time.Hour, "staleness cutoff (stale)")
	)
	flag.Parse()

	if *cmd == "" {
		log.Fatalf("error: -cmd is required")
	}

	store := session.NewStore()

	if _, err := os.Stat(*data); err == nil {
		if err := restore(store, *data); err != nil {
			log.Fatalf("failed to restore snapshot: %v", err)
		}
	}

	now := time.Now().Unix()

	switch *cmd {
	case "open":
		if *user == "" {
			log.Fatalf("error: -user is required")
		}
		id, sessionRef := session.Open(store, *user, now)
		fmt.Printf("{\"id\":%d,\"ref\":%q}\n", int64(id), sessionRef)

	case "touch":
		r, err := uuid.Parse(*ref)
		if err != nil {
			log.Fatalf("bad -ref: %v", err)
		}
		item, ok := session.Lookup(store, r)
		if !ok {
			log.Fatalf("no session for ref %s", r)
		}
		session.Touch(store, item.Id, now)
		fmt.Println(`{"status":"touched"}`)

	case "lookup":
		r, err := uuid.Parse(*ref)
		if err != nil {
			log.Fatalf("bad -ref: %v", err)
		}
		item, ok := session.Lookup(store, r)
		if !ok {
			fmt.Println(`{"found":false}`)
			return
		}
		json.NewEncoder(os.Stdout).Encode(map[string]any{
			"found":     true,
			"id":        int64(item.Id),
			"user_id":   item.Value.UserID,
			"last_seen": item.Value.LastSeen,
		})

	case "stale":
		cutoff := now - int64((*ttl).Seconds())
		items := session.StaleBefore(store, cutoff)
		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			out = append(out, map[string]any{
				"id":        int64(item.Id),
				"ref":       item.Value.Ref,
				"user_id":   item.Value.UserID,
				"last_seen": item.Value.LastSeen,
			})
		}
		json.NewEncoder(os.Stdout).Encode(out)

	default:
		log.Fatalf("unknown command: %s", *cmd)
	}

	if err := persist(store, *data); err != nil {
		log.Fatalf("failed to persist snapshot: %v", err)
	}
}

func restore(store *session.Store, path string) error {
	b, err := snapshot.Open(path)
	if err != nil {
		return err
	}
	defer b.Close()

	n, err := session.LoadInto(store, b)
	if err != nil {
		return err
	}
	log.Printf("[cli] restored %d sessions from %s", n, path)
	return nil
}

func persist(store *session.Store, path string) error {
	b, err := snapshot.Open(path)
	if err != nil {
		return err
	}
	defer b.Close()

	return session.SaveTo(store, b)
}
