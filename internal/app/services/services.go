package services

// Services defined in this package:
// - CourseService: Course catalog and approval lifecycle
// - CartService: Student cart toggle and resolution
// - SettlementService: Transactional cart settlement into enrollments
// - AccessService: Content access checks for purchased courses
// - UserService: Identity-provider user mirroring
// - TeacherService: Teacher profiles and dashboard aggregates
// - TestimonialService: Learner testimonials
// - RoadmapService: AI-generated learning roadmaps
