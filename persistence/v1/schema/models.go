package schema

var schema = []string{
	`CREATE TABLE notes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		ownerId VARCHAR(255),
		title VARCHAR(255),
		content TEXT,
		padLocked INT,
		padLockCode VARCHAR(255),
		createdAt DATETIME
	)`,
	`CREATE TABLE files (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		ownerId VARCHAR(255),
		blobRef VARCHAR(64),
		filename VARCHAR(255),
		contentType VARCHAR(255),
		size BIGINT,
		padLocked INT,
		padLockCode VARCHAR(255),
		createdAt DATETIME
	)`,
	`CREATE TABLE file_saves (
		fileId BIGINT,
		userId VARCHAR(255),
		savedAt DATETIME
	)`,
}

var dropSchema = []string{
	`DROP TABLE notes`,
	`DROP TABLE files`,
	`DROP TABLE file_saves`,
}
