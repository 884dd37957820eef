package services

// Services defined in this package:
// - AuthService: Handles registration, login and token refresh
// - MemberService: Handles discovery, profiles and the like graph
// - PhotoService: Handles photo upload, main photo and moderation
// - MessageService: Handles the message lifecycle
