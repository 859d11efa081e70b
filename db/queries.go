package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const createTables = `
CREATE TABLE IF NOT EXISTS courses (
	course_index text PRIMARY KEY,
	name text,
	description text,
	raw_prerequisites text,
	hard_tree jsonb NOT NULL,
	coreq_tree jsonb NOT NULL,
	flags text[] NOT NULL,
	notes text[] NOT NULL
);
CREATE TABLE IF NOT EXISTS edges (
	source_index text NOT NULL,
	target_index text NOT NULL,
	kind text NOT NULL,
	PRIMARY KEY (source_index, target_index, kind)
);`

const insertCourse = `INSERT INTO courses (course_index, name, description, raw_prerequisites, hard_tree, coreq_tree, flags, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (course_index) DO UPDATE SET name=EXCLUDED.name, description=EXCLUDED.description, raw_prerequisites=EXCLUDED.raw_prerequisites, hard_tree=EXCLUDED.hard_tree, coreq_tree=EXCLUDED.coreq_tree, flags=EXCLUDED.flags, notes=EXCLUDED.notes`

const insertEdge = `INSERT INTO edges (source_index, target_index, kind) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`

const listCourseIndexes = `SELECT course_index FROM courses ORDER BY course_index`

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

func (d *Database) InsertCourses(ctx context.Context, courses []Course) error {
	if len(courses) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, course := range courses {
		queuedQueries = append(
			queuedQueries,
			batch.Queue(
				insertCourse,
				course.CourseIndex,
				course.Name,
				course.Description,
				course.RawText,
				course.HardTree,
				course.CoreqTree,
				course.Flags,
				course.Notes,
			),
		)
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(ctx, &batch).Close(); err != nil {
		return err
	}

	return nil
}

func (d *Database) InsertEdges(ctx context.Context, edges []Edge) error {
	if len(edges) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, edge := range edges {
		queuedQueries = append(queuedQueries, batch.Queue(insertEdge, edge.SourceIndex, edge.TargetIndex, edge.Kind))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(ctx, &batch).Close(); err != nil {
		return err
	}

	return nil
}

func (d *Database) ListCourseIndexes(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, listCourseIndexes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var indexes []string
	for rows.Next() {
		var index string
		if err := rows.Scan(&index); err != nil {
			return nil, err
		}
		indexes = append(indexes, index)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return indexes, nil
}
