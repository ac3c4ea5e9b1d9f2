// Package task defines the task entity and the in-memory task store.
//
// A task is persisted as one object of the tasks.json array:
//
//	{
//	  "id": "7d9f0c3e-2b1a-4c55-9a0e-1f3b6c2d8e41",
//	  "name": "Buy milk",
//	  "description": "2%",
//	  "date": "2024-01-01T00:00:00Z",
//	  "isCompleted": false
//	}
//
// # Identity
//
// IDs are random UUIDs generated when a task is created. They are never
// reassigned and are the only identity key. The store itself does not
// deduplicate.
//
// # Ordering
//
// The store keeps insertion order. Deletion is positional: offsets refer to
// the order the caller is currently displaying, not to task IDs.
package task
