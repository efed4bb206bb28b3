package db

const (
	queryListBlogs = `
SELECT b.id, b.author_id, u.name, b.title, b.content, b.cover_key,
       (SELECT count(*) FROM votes v WHERE v.blog_id = b.id) AS votes,
       b.updated_at
FROM blogs b
JOIN users u ON u.id = b.author_id
ORDER BY b.updated_at DESC, b.id DESC
LIMIT $1 OFFSET $2`

	queryCountBlogs = `SELECT count(*) FROM blogs`

	queryListUserBlogs = `
SELECT b.id, b.author_id, u.name, b.title, b.content, b.cover_key,
       (SELECT count(*) FROM votes v WHERE v.blog_id = b.id) AS votes,
       b.updated_at
FROM blogs b
JOIN users u ON u.id = b.author_id
WHERE b.author_id = $1
ORDER BY b.updated_at DESC, b.id DESC
LIMIT $2 OFFSET $3`

	queryCountUserBlogs = `SELECT count(*) FROM blogs WHERE author_id = $1`

	queryGetBlog = `
SELECT id, author_id, title, content, cover_key, created_at, updated_at
FROM blogs
WHERE id = $1`

	queryGetBlogDetail = `
SELECT b.id, b.author_id, b.title, b.content, b.cover_key, b.created_at, b.updated_at,
       u.name, u.email,
       (SELECT count(*) FROM votes v WHERE v.blog_id = b.id) AS votes
FROM blogs b
JOIN users u ON u.id = b.author_id
WHERE b.id = $1`

	queryCreateBlog = `
INSERT INTO blogs (id, author_id, title, content)
VALUES ($1, $2, $3, $4)
RETURNING id, author_id, title, content, cover_key, created_at, updated_at`

	queryUpdateBlog = `
UPDATE blogs
SET title = COALESCE($3, title),
    content = COALESCE($4, content),
    updated_at = now()
WHERE id = $1 AND author_id = $2`

	// returns the key being replaced
	queryUpdateBlogCover = `
WITH old AS (
    SELECT id, cover_key FROM blogs WHERE id = $1 AND author_id = $2 FOR UPDATE
)
UPDATE blogs b
SET cover_key = $3, updated_at = now()
FROM old
WHERE b.id = old.id
RETURNING old.cover_key`

	queryDeleteBlog = `
DELETE FROM blogs
WHERE id = $1 AND author_id = $2
RETURNING cover_key`

	queryGetVoteState = `
SELECT (SELECT count(*) FROM votes WHERE blog_id = b.id),
       EXISTS (SELECT 1 FROM votes WHERE blog_id = b.id AND user_id = $2)
FROM blogs b
WHERE b.id = $1`

	queryAddVote = `
INSERT INTO votes (blog_id, user_id)
VALUES ($1, $2)
ON CONFLICT (blog_id, user_id) DO NOTHING`

	queryRemoveVote = `DELETE FROM votes WHERE blog_id = $1 AND user_id = $2`

	queryListComments = `
SELECT c.id, c.blog_id, c.user_id, u.name, c.content, c.created_at
FROM comments c
JOIN users u ON u.id = c.user_id
WHERE c.blog_id = $1
ORDER BY c.created_at DESC, c.id DESC
LIMIT $2 OFFSET $3`

	queryCountComments = `SELECT count(*) FROM comments WHERE blog_id = $1`

	queryCreateComment = `
WITH inserted AS (
    INSERT INTO comments (id, blog_id, user_id, content)
    VALUES ($1, $2, $3, $4)
    RETURNING id, blog_id, user_id, content, created_at
)
SELECT i.id, i.blog_id, i.user_id, u.name, i.content, i.created_at
FROM inserted i
JOIN users u ON u.id = i.user_id`
)
