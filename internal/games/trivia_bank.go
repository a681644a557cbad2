package games

// triviaBank is the static question bank. It is never mutated.
var triviaBank = []Question{
	// Science
	{ID: 1, Prompt: "What is the chemical symbol for gold?", Options: [4]string{"Go", "Gd", "Au", "Ag"}, Correct: 2, Category: "Science", Difficulty: DifficultyEasy},
	{ID: 2, Prompt: "How many bones are in the human body?", Options: [4]string{"206", "208", "210", "204"}, Correct: 0, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 3, Prompt: "What is the speed of light?", Options: [4]string{"300,000 km/s", "299,792,458 m/s", "186,000 mi/s", "All of the above"}, Correct: 3, Category: "Science", Difficulty: DifficultyHard},
	{ID: 4, Prompt: "What gas makes up most of Earth's atmosphere?", Options: [4]string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Hydrogen"}, Correct: 2, Category: "Science", Difficulty: DifficultyEasy},
	{ID: 5, Prompt: "What is the hardest natural substance?", Options: [4]string{"Gold", "Iron", "Diamond", "Platinum"}, Correct: 2, Category: "Science", Difficulty: DifficultyEasy},
	{ID: 6, Prompt: "How many chambers does a human heart have?", Options: [4]string{"2", "3", "4", "5"}, Correct: 2, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 7, Prompt: "What is the smallest unit of matter?", Options: [4]string{"Molecule", "Atom", "Proton", "Electron"}, Correct: 1, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 8, Prompt: "Which planet is known as the Red Planet?", Options: [4]string{"Venus", "Mars", "Jupiter", "Saturn"}, Correct: 1, Category: "Science", Difficulty: DifficultyEasy},
	{ID: 9, Prompt: "What is the chemical formula for water?", Options: [4]string{"H2O", "CO2", "NaCl", "O2"}, Correct: 0, Category: "Science", Difficulty: DifficultyEasy},
	{ID: 10, Prompt: "What type of animal is a dolphin?", Options: [4]string{"Fish", "Mammal", "Reptile", "Amphibian"}, Correct: 1, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 11, Prompt: "What is the boiling point of water at sea level?", Options: [4]string{"90°C", "100°C", "110°C", "120°C"}, Correct: 1, Category: "Science", Difficulty: DifficultyEasy},
	{ID: 12, Prompt: "Which blood type is known as the universal donor?", Options: [4]string{"A", "B", "AB", "O"}, Correct: 3, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 13, Prompt: "What is the largest organ in the human body?", Options: [4]string{"Brain", "Liver", "Skin", "Heart"}, Correct: 2, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 14, Prompt: "How many teeth does an adult human have?", Options: [4]string{"28", "30", "32", "34"}, Correct: 2, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 15, Prompt: "What is the study of earthquakes called?", Options: [4]string{"Geology", "Seismology", "Meteorology", "Astronomy"}, Correct: 1, Category: "Science", Difficulty: DifficultyHard},
	{ID: 16, Prompt: "Which gas is most abundant in the sun?", Options: [4]string{"Oxygen", "Helium", "Hydrogen", "Carbon"}, Correct: 2, Category: "Science", Difficulty: DifficultyHard},
	{ID: 17, Prompt: "What is the pH level of pure water?", Options: [4]string{"6", "7", "8", "9"}, Correct: 1, Category: "Science", Difficulty: DifficultyMedium},
	{ID: 18, Prompt: "How many chromosomes do humans have?", Options: [4]string{"44", "46", "48", "50"}, Correct: 1, Category: "Science", Difficulty: DifficultyHard},
	{ID: 19, Prompt: "What is the fastest land animal?", Options: [4]string{"Lion", "Cheetah", "Leopard", "Tiger"}, Correct: 1, Category: "Science", Difficulty: DifficultyEasy},
	{ID: 20, Prompt: "Which vitamin is produced when skin is exposed to sunlight?", Options: [4]string{"Vitamin A", "Vitamin C", "Vitamin D", "Vitamin E"}, Correct: 2, Category: "Science", Difficulty: DifficultyMedium},

	// Geography
	{ID: 21, Prompt: "What is the capital of Australia?", Options: [4]string{"Sydney", "Melbourne", "Canberra", "Perth"}, Correct: 2, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 22, Prompt: "Which river is the longest in the world?", Options: [4]string{"Amazon", "Nile", "Mississippi", "Yangtze"}, Correct: 1, Category: "Geography", Difficulty: DifficultyEasy},
	{ID: 23, Prompt: "How many time zones does Russia span?", Options: [4]string{"9", "11", "13", "15"}, Correct: 1, Category: "Geography", Difficulty: DifficultyHard},
	{ID: 24, Prompt: "What is the smallest country in the world?", Options: [4]string{"Monaco", "Nauru", "Vatican City", "San Marino"}, Correct: 2, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 25, Prompt: "Which continent has the most countries?", Options: [4]string{"Asia", "Europe", "Africa", "South America"}, Correct: 2, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 26, Prompt: "What is the highest mountain in the world?", Options: [4]string{"K2", "Mount Everest", "Kangchenjunga", "Lhotse"}, Correct: 1, Category: "Geography", Difficulty: DifficultyEasy},
	{ID: 27, Prompt: "Which ocean is the largest?", Options: [4]string{"Atlantic", "Indian", "Arctic", "Pacific"}, Correct: 3, Category: "Geography", Difficulty: DifficultyEasy},
	{ID: 28, Prompt: "What is the capital of Brazil?", Options: [4]string{"São Paulo", "Rio de Janeiro", "Brasília", "Salvador"}, Correct: 2, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 29, Prompt: "Which desert is the largest in the world?", Options: [4]string{"Sahara", "Gobi", "Antarctica", "Arabian"}, Correct: 2, Category: "Geography", Difficulty: DifficultyHard},
	{ID: 30, Prompt: "What is the deepest point on Earth?", Options: [4]string{"Mariana Trench", "Puerto Rico Trench", "Java Trench", "Philippine Trench"}, Correct: 0, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 31, Prompt: "How many Great Lakes are there?", Options: [4]string{"4", "5", "6", "7"}, Correct: 1, Category: "Geography", Difficulty: DifficultyEasy},
	{ID: 32, Prompt: "Which country has the most natural lakes?", Options: [4]string{"Russia", "Canada", "Finland", "Sweden"}, Correct: 1, Category: "Geography", Difficulty: DifficultyHard},
	{ID: 33, Prompt: "What is the capital of Canada?", Options: [4]string{"Toronto", "Vancouver", "Montreal", "Ottawa"}, Correct: 3, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 34, Prompt: "Which African country was never colonized?", Options: [4]string{"Libya", "Ethiopia", "Morocco", "Egypt"}, Correct: 1, Category: "Geography", Difficulty: DifficultyHard},
	{ID: 35, Prompt: "What is the largest island in the world?", Options: [4]string{"Australia", "Greenland", "New Guinea", "Borneo"}, Correct: 1, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 36, Prompt: "Which strait separates Europe and Africa?", Options: [4]string{"Bosphorus", "Gibraltar", "Hormuz", "Malacca"}, Correct: 1, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 37, Prompt: "What is the longest river in Europe?", Options: [4]string{"Danube", "Rhine", "Volga", "Thames"}, Correct: 2, Category: "Geography", Difficulty: DifficultyHard},
	{ID: 38, Prompt: "Which city is known as the Pearl of the Orient?", Options: [4]string{"Shanghai", "Hong Kong", "Manila", "Singapore"}, Correct: 2, Category: "Geography", Difficulty: DifficultyHard},
	{ID: 39, Prompt: "How many U.S. states border Mexico?", Options: [4]string{"3", "4", "5", "6"}, Correct: 1, Category: "Geography", Difficulty: DifficultyMedium},
	{ID: 40, Prompt: "What is the driest place on Earth?", Options: [4]string{"Death Valley", "Sahara Desert", "Atacama Desert", "Gobi Desert"}, Correct: 2, Category: "Geography", Difficulty: DifficultyHard},

	// Technology
	{ID: 41, Prompt: "What does 'HTML' stand for?", Options: [4]string{"HyperText Markup Language", "Home Tool Markup Language", "Hyperlinks Text Mark Language", "None of the above"}, Correct: 0, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 42, Prompt: "Who founded Microsoft?", Options: [4]string{"Steve Jobs", "Bill Gates", "Mark Zuckerberg", "Larry Page"}, Correct: 1, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 43, Prompt: "What year was the first iPhone released?", Options: [4]string{"2006", "2007", "2008", "2009"}, Correct: 1, Category: "Technology", Difficulty: DifficultyMedium},
	{ID: 44, Prompt: "What does 'CPU' stand for?", Options: [4]string{"Computer Processing Unit", "Central Processing Unit", "Central Program Unit", "Computer Program Unit"}, Correct: 1, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 45, Prompt: "Which company developed the Java programming language?", Options: [4]string{"Microsoft", "Apple", "Sun Microsystems", "Google"}, Correct: 2, Category: "Technology", Difficulty: DifficultyMedium},
	{ID: 46, Prompt: "What does 'AI' stand for?", Options: [4]string{"Automated Intelligence", "Artificial Intelligence", "Advanced Intelligence", "Automatic Intelligence"}, Correct: 1, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 47, Prompt: "Which social media platform was founded first?", Options: [4]string{"Facebook", "Twitter", "MySpace", "LinkedIn"}, Correct: 2, Category: "Technology", Difficulty: DifficultyMedium},
	{ID: 48, Prompt: "What is the maximum length of a Tweet on Twitter/X?", Options: [4]string{"140 characters", "280 characters", "320 characters", "500 characters"}, Correct: 1, Category: "Technology", Difficulty: DifficultyMedium},
	{ID: 49, Prompt: "Which programming language is known as the 'mother of all languages'?", Options: [4]string{"C", "FORTRAN", "COBOL", "Assembly"}, Correct: 0, Category: "Technology", Difficulty: DifficultyHard},
	{ID: 50, Prompt: "What does 'WWW' stand for?", Options: [4]string{"World Wide Web", "World Wide Web", "Worldwide Web", "Web Wide World"}, Correct: 0, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 51, Prompt: "Which company owns YouTube?", Options: [4]string{"Microsoft", "Google", "Facebook", "Amazon"}, Correct: 1, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 52, Prompt: "What is the most popular web browser?", Options: [4]string{"Safari", "Firefox", "Chrome", "Edge"}, Correct: 2, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 53, Prompt: "What does 'USB' stand for?", Options: [4]string{"Universal Serial Bus", "United Serial Bus", "Universal System Bus", "United System Bus"}, Correct: 0, Category: "Technology", Difficulty: DifficultyMedium},
	{ID: 54, Prompt: "Which company developed the Android operating system?", Options: [4]string{"Apple", "Microsoft", "Google", "Samsung"}, Correct: 2, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 55, Prompt: "What is the binary equivalent of decimal 10?", Options: [4]string{"1010", "1100", "1001", "1011"}, Correct: 0, Category: "Technology", Difficulty: DifficultyHard},
	{ID: 56, Prompt: "Which protocol is used for secure web browsing?", Options: [4]string{"HTTP", "HTTPS", "FTP", "SMTP"}, Correct: 1, Category: "Technology", Difficulty: DifficultyMedium},
	{ID: 57, Prompt: "What does 'RAM' stand for?", Options: [4]string{"Read Access Memory", "Random Access Memory", "Rapid Access Memory", "Read Active Memory"}, Correct: 1, Category: "Technology", Difficulty: DifficultyEasy},
	{ID: 58, Prompt: "Which company created the first personal computer?", Options: [4]string{"IBM", "Apple", "Altair", "Commodore"}, Correct: 2, Category: "Technology", Difficulty: DifficultyHard},
	{ID: 59, Prompt: "What is the most used programming language in 2024?", Options: [4]string{"Python", "JavaScript", "Java", "C++"}, Correct: 1, Category: "Technology", Difficulty: DifficultyMedium},
	{ID: 60, Prompt: "Which technology enables contactless payments?", Options: [4]string{"Bluetooth", "WiFi", "NFC", "GPS"}, Correct: 2, Category: "Technology", Difficulty: DifficultyMedium},

	// Entertainment
	{ID: 61, Prompt: "Which movie won the Oscar for Best Picture in 2020?", Options: [4]string{"1917", "Joker", "Parasite", "Once Upon a Time in Hollywood"}, Correct: 2, Category: "Entertainment", Difficulty: DifficultyMedium},
	{ID: 62, Prompt: "What is the highest-grossing film of all time?", Options: [4]string{"Avatar", "Avengers: Endgame", "Titanic", "Star Wars: The Force Awakens"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 63, Prompt: "Who composed 'The Four Seasons'?", Options: [4]string{"Mozart", "Beethoven", "Vivaldi", "Bach"}, Correct: 2, Category: "Entertainment", Difficulty: DifficultyMedium},
	{ID: 64, Prompt: "Which TV series has the most Emmy Awards?", Options: [4]string{"Game of Thrones", "The West Wing", "Saturday Night Live", "Frasier"}, Correct: 2, Category: "Entertainment", Difficulty: DifficultyHard},
	{ID: 65, Prompt: "Who painted the Mona Lisa?", Options: [4]string{"Van Gogh", "Picasso", "Da Vinci", "Michelangelo"}, Correct: 2, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 66, Prompt: "Which Disney movie features the song 'Let It Go'?", Options: [4]string{"Moana", "Frozen", "Tangled", "Brave"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 67, Prompt: "Who directed the movie 'Pulp Fiction'?", Options: [4]string{"Martin Scorsese", "Quentin Tarantino", "Christopher Nolan", "Steven Spielberg"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyMedium},
	{ID: 68, Prompt: "Which band released the album 'Abbey Road'?", Options: [4]string{"The Rolling Stones", "The Beatles", "Led Zeppelin", "The Who"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 69, Prompt: "What is the longest-running Broadway show?", Options: [4]string{"The Lion King", "Chicago", "The Phantom of the Opera", "Cats"}, Correct: 2, Category: "Entertainment", Difficulty: DifficultyHard},
	{ID: 70, Prompt: "Who wrote the Harry Potter series?", Options: [4]string{"J.R.R. Tolkien", "C.S. Lewis", "J.K. Rowling", "George R.R. Martin"}, Correct: 2, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 71, Prompt: "Which streaming service produced 'Stranger Things'?", Options: [4]string{"Hulu", "Netflix", "Amazon Prime", "Disney+"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 72, Prompt: "Who played Iron Man in the Marvel Cinematic Universe?", Options: [4]string{"Chris Evans", "Robert Downey Jr.", "Mark Ruffalo", "Chris Hemsworth"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 73, Prompt: "Which video game console was released first?", Options: [4]string{"PlayStation", "Xbox", "Nintendo 64", "Sega Saturn"}, Correct: 3, Category: "Entertainment", Difficulty: DifficultyHard},
	{ID: 74, Prompt: "What is the best-selling video game of all time?", Options: [4]string{"Tetris", "Minecraft", "Grand Theft Auto V", "Super Mario Bros."}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyMedium},
	{ID: 75, Prompt: "Who composed the music for 'Star Wars'?", Options: [4]string{"Hans Zimmer", "John Williams", "Danny Elfman", "James Horner"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyMedium},
	{ID: 76, Prompt: "Which superhero is known as the 'Man of Steel'?", Options: [4]string{"Batman", "Superman", "Iron Man", "Captain America"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 77, Prompt: "What is the highest-rated TV series on IMDb?", Options: [4]string{"Breaking Bad", "Game of Thrones", "The Sopranos", "Planet Earth II"}, Correct: 3, Category: "Entertainment", Difficulty: DifficultyHard},
	{ID: 78, Prompt: "Which movie franchise has the most sequels?", Options: [4]string{"Fast & Furious", "James Bond", "Star Wars", "Marvel Cinematic Universe"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyMedium},
	{ID: 79, Prompt: "Who is the lead singer of Queen?", Options: [4]string{"David Bowie", "Freddie Mercury", "Elton John", "Rod Stewart"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyEasy},
	{ID: 80, Prompt: "Which animated movie won the first Academy Award for Best Animated Feature?", Options: [4]string{"Monsters, Inc.", "Shrek", "Jimmy Neutron", "Ice Age"}, Correct: 1, Category: "Entertainment", Difficulty: DifficultyHard},

	// History
	{ID: 81, Prompt: "In what year did World War II end?", Options: [4]string{"1944", "1945", "1946", "1947"}, Correct: 1, Category: "History", Difficulty: DifficultyEasy},
	{ID: 82, Prompt: "Who was the first person to walk on the moon?", Options: [4]string{"Buzz Aldrin", "Neil Armstrong", "John Glenn", "Alan Shepard"}, Correct: 1, Category: "History", Difficulty: DifficultyEasy},
	{ID: 83, Prompt: "Which ancient wonder of the world was located in Alexandria?", Options: [4]string{"Hanging Gardens", "Lighthouse", "Colossus", "Mausoleum"}, Correct: 1, Category: "History", Difficulty: DifficultyHard},
	{ID: 84, Prompt: "When did the Berlin Wall fall?", Options: [4]string{"1987", "1988", "1989", "1990"}, Correct: 2, Category: "History", Difficulty: DifficultyMedium},
	{ID: 85, Prompt: "Who was the first President of the United States?", Options: [4]string{"Thomas Jefferson", "John Adams", "George Washington", "Benjamin Franklin"}, Correct: 2, Category: "History", Difficulty: DifficultyEasy},
	{ID: 86, Prompt: "Which empire was ruled by Julius Caesar?", Options: [4]string{"Greek", "Roman", "Egyptian", "Persian"}, Correct: 1, Category: "History", Difficulty: DifficultyEasy},
	{ID: 87, Prompt: "When did the Titanic sink?", Options: [4]string{"1910", "1911", "1912", "1913"}, Correct: 2, Category: "History", Difficulty: DifficultyMedium},
	{ID: 88, Prompt: "Who painted the ceiling of the Sistine Chapel?", Options: [4]string{"Leonardo da Vinci", "Raphael", "Michelangelo", "Donatello"}, Correct: 2, Category: "History", Difficulty: DifficultyMedium},
	{ID: 89, Prompt: "Which war was fought between the North and South in America?", Options: [4]string{"Revolutionary War", "War of 1812", "Civil War", "Spanish-American War"}, Correct: 2, Category: "History", Difficulty: DifficultyEasy},
	{ID: 90, Prompt: "Who discovered America in 1492?", Options: [4]string{"Vasco da Gama", "Christopher Columbus", "Ferdinand Magellan", "Marco Polo"}, Correct: 1, Category: "History", Difficulty: DifficultyEasy},
	{ID: 91, Prompt: "Which ancient civilization built Machu Picchu?", Options: [4]string{"Aztecs", "Mayans", "Incas", "Olmecs"}, Correct: 2, Category: "History", Difficulty: DifficultyMedium},
	{ID: 92, Prompt: "When did the French Revolution begin?", Options: [4]string{"1789", "1790", "1791", "1792"}, Correct: 0, Category: "History", Difficulty: DifficultyMedium},
	{ID: 93, Prompt: "Who was known as the 'Iron Lady'?", Options: [4]string{"Queen Elizabeth II", "Margaret Thatcher", "Golda Meir", "Indira Gandhi"}, Correct: 1, Category: "History", Difficulty: DifficultyMedium},
	{ID: 94, Prompt: "Which country gifted the Statue of Liberty to the USA?", Options: [4]string{"Britain", "Spain", "France", "Italy"}, Correct: 2, Category: "History", Difficulty: DifficultyEasy},
	{ID: 95, Prompt: "When did World War I begin?", Options: [4]string{"1914", "1915", "1916", "1917"}, Correct: 0, Category: "History", Difficulty: DifficultyMedium},
	{ID: 96, Prompt: "Who wrote the Communist Manifesto?", Options: [4]string{"Vladimir Lenin", "Karl Marx", "Joseph Stalin", "Leon Trotsky"}, Correct: 1, Category: "History", Difficulty: DifficultyHard},
	{ID: 97, Prompt: "Which dynasty ruled China for over 400 years?", Options: [4]string{"Ming", "Qing", "Tang", "Song"}, Correct: 1, Category: "History", Difficulty: DifficultyHard},
	{ID: 98, Prompt: "When did the United Nations form?", Options: [4]string{"1944", "1945", "1946", "1947"}, Correct: 1, Category: "History", Difficulty: DifficultyMedium},
	{ID: 99, Prompt: "Who was the last Pharaoh of Egypt?", Options: [4]string{"Cleopatra VII", "Tutankhamun", "Ramesses II", "Akhenaten"}, Correct: 0, Category: "History", Difficulty: DifficultyHard},
	{ID: 100, Prompt: "Which event triggered World War I?", Options: [4]string{"Invasion of Poland", "Pearl Harbor", "Assassination of Archduke Franz Ferdinand", "Sinking of Lusitania"}, Correct: 2, Category: "History", Difficulty: DifficultyHard},

	// Sports
	{ID: 101, Prompt: "How many players are on a basketball team on the court?", Options: [4]string{"4", "5", "6", "7"}, Correct: 1, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 102, Prompt: "Which country has won the most FIFA World Cups?", Options: [4]string{"Germany", "Argentina", "Brazil", "Italy"}, Correct: 2, Category: "Sports", Difficulty: DifficultyMedium},
	{ID: 103, Prompt: "What is the maximum score possible in ten-pin bowling?", Options: [4]string{"250", "280", "300", "350"}, Correct: 2, Category: "Sports", Difficulty: DifficultyMedium},
	{ID: 104, Prompt: "How long is a marathon?", Options: [4]string{"24.2 miles", "25.2 miles", "26.2 miles", "27.2 miles"}, Correct: 2, Category: "Sports", Difficulty: DifficultyMedium},
	{ID: 105, Prompt: "Which sport is known as 'the beautiful game'?", Options: [4]string{"Basketball", "Soccer/Football", "Tennis", "Baseball"}, Correct: 1, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 106, Prompt: "How many holes are on a standard golf course?", Options: [4]string{"16", "17", "18", "19"}, Correct: 2, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 107, Prompt: "Which tennis tournament is played on clay courts?", Options: [4]string{"Wimbledon", "US Open", "French Open", "Australian Open"}, Correct: 2, Category: "Sports", Difficulty: DifficultyMedium},
	{ID: 108, Prompt: "What is the maximum number of players on a soccer field per team?", Options: [4]string{"10", "11", "12", "13"}, Correct: 1, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 109, Prompt: "Which country hosted the 2016 Summer Olympics?", Options: [4]string{"China", "Brazil", "UK", "Russia"}, Correct: 1, Category: "Sports", Difficulty: DifficultyMedium},
	{ID: 110, Prompt: "What does NBA stand for?", Options: [4]string{"National Basketball Association", "North Basketball Association", "National Ball Association", "New Basketball Association"}, Correct: 0, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 111, Prompt: "Which swimmer has won the most Olympic gold medals?", Options: [4]string{"Mark Spitz", "Michael Phelps", "Ryan Lochte", "Caeleb Dressel"}, Correct: 1, Category: "Sports", Difficulty: DifficultyMedium},
	{ID: 112, Prompt: "How many points is a touchdown worth in American football?", Options: [4]string{"5", "6", "7", "8"}, Correct: 1, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 113, Prompt: "Which sport uses terms like 'love', 'deuce', and 'advantage'?", Options: [4]string{"Badminton", "Tennis", "Squash", "Table Tennis"}, Correct: 1, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 114, Prompt: "What is the highest possible break in snooker?", Options: [4]string{"147", "155", "167", "180"}, Correct: 0, Category: "Sports", Difficulty: DifficultyHard},
	{ID: 115, Prompt: "Which Formula 1 driver has won the most championships?", Options: [4]string{"Ayrton Senna", "Michael Schumacher", "Lewis Hamilton", "Sebastian Vettel"}, Correct: 1, Category: "Sports", Difficulty: DifficultyHard},
	{ID: 116, Prompt: "How many innings are in a standard baseball game?", Options: [4]string{"7", "8", "9", "10"}, Correct: 2, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 117, Prompt: "Which country invented rugby?", Options: [4]string{"Australia", "New Zealand", "South Africa", "England"}, Correct: 3, Category: "Sports", Difficulty: DifficultyMedium},
	{ID: 118, Prompt: "What is the diameter of a basketball hoop?", Options: [4]string{"16 inches", "17 inches", "18 inches", "19 inches"}, Correct: 2, Category: "Sports", Difficulty: DifficultyHard},
	{ID: 119, Prompt: "Which sport is Tiger Woods famous for?", Options: [4]string{"Tennis", "Golf", "Baseball", "Swimming"}, Correct: 1, Category: "Sports", Difficulty: DifficultyEasy},
	{ID: 120, Prompt: "How many periods are in a hockey game?", Options: [4]string{"2", "3", "4", "5"}, Correct: 1, Category: "Sports", Difficulty: DifficultyMedium},
}
