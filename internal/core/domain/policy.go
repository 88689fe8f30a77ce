package domain

// Authorization policy for the blog. An unauthenticated caller carries the
// zero Role (""), which is treated exactly like a READER for read visibility
// and denied everything else.
//
// Post operations by caller role:
//
//	              anon/READER  WRITER  ADMIN
//	list/get      published    published  all
//	create        no           yes        yes
//	update/delete no           no         yes
//
// WRITER deliberately gets no special read visibility and cannot edit or
// delete posts, not even their own: only ADMIN mutates existing posts.

// CanViewUnpublished reports whether the role may observe unpublished posts.
func CanViewUnpublished(r Role) bool {
	return r == RoleAdmin
}

// CanCreatePosts reports whether the role may author new posts.
func CanCreatePosts(r Role) bool {
	return r == RoleWriter || r == RoleAdmin
}

// CanManagePosts reports whether the role may update or delete any post.
func CanManagePosts(r Role) bool {
	return r == RoleAdmin
}

// CanManageUsers reports whether the role may list users and change roles.
func CanManageUsers(r Role) bool {
	return r == RoleAdmin
}
