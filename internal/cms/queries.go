package cms

// Query templates. Parameters are referenced as $name and supplied through
// Fetch's params map.

const postProjection = `{
	_id, _createdAt, _updatedAt, title, slug, excerpt, body, tags, featured, readTime, publishedAt,
	"category": categories[0]->title,
	"authorName": author->name,
	"mainImageUrl": mainImage.asset->url
}`

// PostsQuery expects $category, $tag (empty string disables) and $featuredOnly.
const PostsQuery = `*[_type == "post" && defined(slug.current) && defined(publishedAt)
	&& ($category == "" || $category in categories[]->title || $category in categories[]->slug.current)
	&& ($tag == "" || $tag in tags)
	&& (!$featuredOnly || featured == true)
] | order(publishedAt desc) ` + postProjection

// PostBySlugQuery expects $slug. Drafts without publishedAt never match.
const PostBySlugQuery = `*[_type == "post" && slug.current == $slug && defined(publishedAt)][0] ` + postProjection

const ThoughtsQuery = `*[_type == "thought"] | order(pinned desc, publishedAt desc) {
	_id, content, tags, mood, publishedAt, pinned
}`

// ProjectsQuery expects $featuredOnly.
const ProjectsQuery = `*[_type == "project" && (!$featuredOnly || featured == true)] | order(order asc) {
	_id, title, description, technologies, githubUrl, demoUrl, featured, order,
	"imageUrl": image.asset->url
}`

const SiteSettingsQuery = `*[_type == "siteSettings"][0] {
	heroTitle, heroTagline, heroDescription, heroHighlight,
	metrics[]{ number, label, context }
}`

const AuthorsQuery = `*[_type == "author"] | order(name asc) {
	_id, name, slug, bio, "imageUrl": image.asset->url
}`

const CategoriesQuery = `*[_type == "category"] | order(title asc) {
	_id, title, slug, description
}`
