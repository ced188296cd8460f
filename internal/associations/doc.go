// Package associations links exercises to tags and shapes join rows into the
// nested lists clients read.
//
// # Rules
//
//   - A pair (exercise, tag) is linked at most once. The unique index on
//     exercises_tags is the guard; the engine only translates its error.
//   - AddTag checks both sides and inserts inside one transaction, then
//     re-reads the exercise after commit.
//   - Links disappear with either side through store cascades. Nothing here
//     assumes it is the only path that removes them.
//   - Shaped lists follow link order and are never nil.
package associations
