package utils

// AuthCachePrefix is the Redis key prefix for cached token hashes.
const AuthCachePrefix = "authCache:"

// DocumentFolder is the Cloudinary folder for clinical documents.
const DocumentFolder = "medportal/documents"

// ProfilePhotoFolder is the Cloudinary folder for profile photos.
const ProfilePhotoFolder = "medportal/profile"
